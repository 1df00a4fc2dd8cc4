package services

import (
	"encoding/json"
	"strings"
)

// ParseIDList 容错解析序列化的商品ID列表字符串
// 历史数据以单引号列表字面量形式存储（如 "['P001', 'P002']"），
// 部分新数据为 JSON 数组。任何解析失败都按空列表处理，不报错
func ParseIDList(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" || !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return []string{}
	}

	// JSON 数组直接解析
	var ids []string
	if err := json.Unmarshal([]byte(s), &ids); err == nil {
		return nonEmpty(ids)
	}

	// 列表字面量：去掉括号后按逗号切分，剥离引号
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return []string{}
	}

	parts := strings.Split(inner, ",")
	ids = make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && (p[0] == '\'' || p[0] == '"') {
			if p[len(p)-1] != p[0] {
				// 引号不配对，整条记录按坏数据处理
				return []string{}
			}
			p = p[1 : len(p)-1]
		}
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func nonEmpty(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) != "" {
			out = append(out, strings.TrimSpace(id))
		}
	}
	return out
}
