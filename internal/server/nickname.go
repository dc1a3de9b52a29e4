package server

import (
	"math/rand"
)

// 昵称词库
var (
	adjectives = []string{
		"富有的", "幸运的", "精明的", "阔气的", "破产的",
		"豪横的", "节俭的", "贪心的", "稳健的", "冒险的",
		"走运的", "抠门的", "大方的", "神气的", "发财的",
		"囤地的", "收租的", "欠债的", "暴富的", "翻盘的",
	}

	nouns = []string{
		"礼帽", "小狗", "熨斗", "顶针", "战舰",
		"赛车", "长靴", "手推车", "骰子", "钞票",
		"地契", "火车头", "大亨", "地主", "房东",
		"银行家", "收租佬", "建筑师", "拍卖师", "包租婆",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + noun
}
