package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// SquareType 地块类型
type SquareType string

const (
	SquareProperty SquareType = "PROPERTY" // 可购买的地产
	SquareOther    SquareType = "OTHER"    // 其他（起点、机会等）
)

// Square 棋盘上的一个地块。Owner 和 IsMortgaged 是每局状态，
// 模板中为零值，房间持有的副本中随游戏变化。
type Square struct {
	ID          int        `json:"id"`
	Type        SquareType `json:"type"`
	Name        string     `json:"propertyName,omitempty"`
	Price       int        `json:"price,omitempty"`
	Rent        int        `json:"rent,omitempty"`
	Mortgage    int        `json:"mortgage,omitempty"`   // 抵押可得现金
	Unmortgage  int        `json:"unmortgage,omitempty"` // 赎回需付现金
	Owner       string     `json:"owner,omitempty"`
	IsMortgaged bool       `json:"isMortgaged,omitempty"`
}

// Board 棋盘模板，所有房间共享只读
type Board struct {
	Squares []Square
}

// Load 从 JSON 文件加载棋盘模板
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取棋盘文件失败: %w", err)
	}

	var file struct {
		Squares []Square `json:"squares"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析棋盘文件失败: %w", err)
	}
	if len(file.Squares) == 0 {
		return nil, fmt.Errorf("棋盘文件 %s 中没有地块", path)
	}

	// 地块 ID 即数组下标
	for i := range file.Squares {
		file.Squares[i].ID = i
		s := &file.Squares[i]
		if s.Type == SquareProperty && s.Price <= 0 {
			return nil, fmt.Errorf("地块 %d (%s) 缺少价格", i, s.Name)
		}
	}

	return &Board{Squares: file.Squares}, nil
}

// Size 返回棋盘地块数
func (b *Board) Size() int {
	return len(b.Squares)
}

// Copy 返回地块的深拷贝，供新房间使用
func (b *Board) Copy() []Square {
	squares := make([]Square, len(b.Squares))
	copy(squares, b.Squares)
	return squares
}
