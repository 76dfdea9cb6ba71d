package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "一条内容多个标签",
			content: "深夜循环这首 #citypop #昭和 好听",
			want:    []string{"citypop", "昭和"},
		},
		{
			name:    "重复标签只保留首次",
			content: "#jazz 开头 #fusion 中间又来一次 #jazz",
			want:    []string{"jazz", "fusion"},
		},
		{
			name:    "标签后紧跟标点",
			content: "推荐 #synthwave, 还有 #lofi。",
			want:    []string{"synthwave", "lofi"},
		},
		{
			name:    "没有标签",
			content: "就是普通的一段推荐语",
			want:    nil,
		},
		{
			name:    "单独的井号不算标签",
			content: "# 后面是空格 #",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.content))
		})
	}
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	ids, err := StrSliceToUInt64Slice([]string{"1", "42", "9007199254740993"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 42, 9007199254740993}, ids)

	_, err = StrSliceToUInt64Slice([]string{"1", "abc"})
	assert.Error(t, err)

	ids, err = StrSliceToUInt64Slice(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
