package room

import (
	"context"
	"fmt"
	"log"

	"github.com/boardwalk/monopoly-online/internal/apperrors"
	"github.com/boardwalk/monopoly-online/internal/game/board"
	"github.com/boardwalk/monopoly-online/internal/protocol"
)

// TriggerTurn 掷骰子、移动并结算落点。落在无主地产上时进入待购买状态，
// 回合不推进，直到玩家作出购买决定。
func (r *Room) TriggerTurn(playerID string) error {
	r.mu.Lock()

	player, ok := r.Players[playerID]
	if !ok {
		r.mu.Unlock()
		return apperrors.ErrNotInRoom
	}
	if r.NextTurn != playerID {
		r.mu.Unlock()
		return apperrors.ErrNotYourTurn
	}
	if r.pendingBuy >= 0 {
		r.mu.Unlock()
		return apperrors.ErrPurchasePending
	}

	d1, d2 := r.dice()
	position := (player.Position + d1 + d2) % len(r.Squares)
	player.Position = position

	log.Printf("🎲 房间 %s 玩家 %s 掷出 %d+%d，移动到 %d", r.ID, playerID, d1, d2, position)

	r.broadcast(protocol.MustNewMessage(protocol.MsgPlayerMoved, protocol.PlayerMovedPayload{
		Player:   playerID,
		Position: position,
		Msg:      fmt.Sprintf("玩家 %s 移动到 %d", playerID, position),
	}))

	var rentPayer, rentOwner string
	var rentPaid int
	advance := true

	square := &r.Squares[position]
	if square.Type == board.SquareProperty {
		switch {
		case square.Owner == "":
			// 无主地产，询问是否购买
			r.pendingBuy = position
			player.Client.SendMessage(protocol.MustNewMessage(protocol.MsgOfferBuyProperty, protocol.OfferBuyPropertyPayload{
				SquareID: position,
			}))
			advance = false

		case square.Owner != playerID:
			// 抵押中的地产不收租
			if square.IsMortgaged {
				break
			}
			owner, exists := r.Players[square.Owner]
			if !exists {
				// 业主已离开房间，地块所有权保留但无人收租
				log.Printf("⚠️ 房间 %s 地块 %d 的业主 %s 已不在房间", r.ID, position, square.Owner)
				break
			}
			rent := square.Rent
			player.Cash -= rent
			owner.Cash += rent
			rentPayer, rentOwner, rentPaid = playerID, square.Owner, rent

			log.Printf("💰 房间 %s 玩家 %s 向 %s 支付租金 %d", r.ID, playerID, square.Owner, rent)

			r.broadcast(protocol.MustNewMessage(protocol.MsgRentPaid, protocol.RentPaidPayload{
				Owner: square.Owner,
				Payee: playerID,
				Rent:  rent,
				Msg:   fmt.Sprintf("玩家 %s 向 %s 支付租金 %d", playerID, square.Owner, rent),
			}))
		}
	}

	if advance {
		r.advanceTurn()
	}

	payerCash := player.Cash
	var ownerCash int
	if rentOwner != "" {
		ownerCash = r.Players[rentOwner].Cash
	}
	r.mu.Unlock()

	r.saveAsync()
	if rentPaid > 0 && r.store != nil {
		go func() {
			ctx := context.Background()
			_ = r.store.RecordRent(ctx, rentPayer, rentOwner, rentPaid)
			_ = r.store.UpdateWealth(ctx, rentPayer, payerCash)
			_ = r.store.UpdateWealth(ctx, rentOwner, ownerCash)
		}()
	}

	return nil
}

// DecidePurchase 处理购买决定。接受则登记业主并扣除价格，
// 无论接受与否，回合随后推进。
func (r *Room) DecidePurchase(playerID string, accept bool) error {
	r.mu.Lock()

	player, ok := r.Players[playerID]
	if !ok {
		r.mu.Unlock()
		return apperrors.ErrNotInRoom
	}
	if r.NextTurn != playerID {
		r.mu.Unlock()
		return apperrors.ErrNotYourTurn
	}
	if r.pendingBuy < 0 {
		r.mu.Unlock()
		return apperrors.ErrNoPendingPurchase
	}

	squareID := r.pendingBuy
	r.pendingBuy = -1

	bought := false
	if accept {
		square := &r.Squares[squareID]
		square.Owner = playerID
		player.Cash -= square.Price
		bought = true

		log.Printf("💰 房间 %s 玩家 %s 以 %d 购得 %s", r.ID, playerID, square.Price, square.Name)

		r.broadcast(protocol.MustNewMessage(protocol.MsgPropertyPurchased, protocol.PropertyPurchasedPayload{
			Buyer:    playerID,
			SquareID: squareID,
			Msg:      fmt.Sprintf("玩家 %s 以 %d 购得 %s", playerID, square.Price, square.Name),
		}))
	}

	r.advanceTurn()
	cash := player.Cash
	r.mu.Unlock()

	r.saveAsync()
	if bought && r.store != nil {
		go func() {
			ctx := context.Background()
			_ = r.store.RecordPropertyBought(ctx, playerID)
			_ = r.store.UpdateWealth(ctx, playerID, cash)
		}()
	}

	return nil
}

// DeclareBankruptcy 宣告破产。玩家退出回合轮换但记录保留，资产冻结不清算。
func (r *Room) DeclareBankruptcy(playerID string) error {
	r.mu.Lock()

	player, ok := r.Players[playerID]
	if !ok {
		r.mu.Unlock()
		return apperrors.ErrNotInRoom
	}
	if r.NextTurn != playerID {
		r.mu.Unlock()
		return apperrors.ErrNotYourTurn
	}

	player.Active = false
	if r.pendingBuy >= 0 {
		r.pendingBuy = -1
	}

	log.Printf("💥 房间 %s 玩家 %s 宣告破产", r.ID, playerID)

	r.broadcast(protocol.MustNewMessage(protocol.MsgPlayerBankrupt, protocol.PlayerBankruptPayload{
		PlayerID: playerID,
		Msg:      "玩家 " + playerID + " 已破产",
	}))

	r.advanceTurn()
	r.mu.Unlock()

	r.saveAsync()
	if r.store != nil {
		go func() { _ = r.store.RecordBankruptcy(context.Background(), playerID) }()
	}

	return nil
}
