package annotation

import "fmt"

// FormatTimestamp 秒数转 MM:SS 展示
// 调用方负责先裁剪，负数与非法值不做防御
func FormatTimestamp(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
