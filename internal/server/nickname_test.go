package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNickname(t *testing.T) {
	// 只校验能生成非空昵称；不比较两次结果，随机撞车会让测试抖动
	name1 := GenerateNickname()
	assert.NotEmpty(t, name1)

	name2 := GenerateNickname()
	assert.NotEmpty(t, name2)
}
