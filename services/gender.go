package services

import "strings"

// NormalizeGender 规范化性别词
// male/men -> "Men"，female/women -> "Women"，其它输入原样返回
// 既用于检索查询的软提示前缀，也用于目录记录的性别比较
func NormalizeGender(term string) string {
	switch strings.ToLower(term) {
	case "male", "men":
		return "Men"
	case "female", "women":
		return "Women"
	default:
		return term
	}
}
