package services

// 体型分类：按序评估的比例/区间规则链，首条命中即返回。
// 规则之间存在重叠，评估顺序决定结果，不能重排。

// ClassifyWomenShape 女性体型分类（肩宽/胸围/腰围/臀围，单位厘米）
// 任一测量值小于等于0返回 "unknown"
func ClassifyWomenShape(shoulders, bust, waist, hips float64) string {
	if shoulders <= 0 || bust <= 0 || waist <= 0 || hips <= 0 {
		return "unknown"
	}

	switch {
	case waist/shoulders >= 1.05 && waist/bust >= 1.05:
		return "Apple"
	case shoulders/hips >= 1.05 || bust/hips >= 1.05:
		return "Inverted Triangle"
	case hips/shoulders >= 1.05 || hips/bust >= 1.05:
		return "Pear"
	case waist/shoulders >= 0.75 && waist/bust >= 0.75:
		return "Rectangle"
	case (waist/shoulders <= 0.75 || waist/bust <= 0.75) && waist/hips <= 0.75:
		return "Hourglass"
	default:
		return "unknown"
	}
}

// ClassifyMenShape 男性体型分类（胸围/腰围/臀围，固定厘米区间）
// 任一测量值小于等于0返回 "unknown"
func ClassifyMenShape(chest, waist, hips float64) string {
	if chest <= 0 || waist <= 0 || hips <= 0 {
		return "unknown"
	}

	between := func(v, lo, hi float64) bool { return v >= lo && v <= hi }

	switch {
	case between(chest, 76.2, 86.36) && between(waist, 76.2, 86.36) && between(hips, 76.2, 86.36):
		return "Rectangle"
	case between(chest, 81.28, 91.44) && between(waist, 81.28, 91.44) && between(hips, 81.28, 91.44):
		return "Oval"
	case between(chest, 71.12, 81.28) && between(waist, 76.2, 86.36) && between(hips, 86.36, 96.52):
		return "Triangle"
	case between(chest, 91.44, 101.6) && between(waist, 71.12, 81.28) && between(hips, 71.12, 81.28):
		return "Inverted Triangle"
	case between(chest, 91.44, 101.6) && between(waist, 76.2, 86.36) && between(hips, 86.36, 96.52):
		return "Trapezoid"
	default:
		return "unknown"
	}
}
