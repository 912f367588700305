package annotation

import (
	"strings"

	"golang.org/x/text/cases"
)

// Category 批注关键词归类结果
type Category string

const (
	CategoryCritical Category = "critical"
	CategoryAttention Category = "attention"
	CategoryTeaching Category = "teaching"
	CategoryPositive Category = "positive"
	CategoryGeneral  Category = "general"
)

// CommentType 映射到落库的批注类型
func (c Category) CommentType() string {
	switch c {
	case CategoryCritical:
		return TypeCritical
	case CategoryAttention:
		return TypeWarning
	case CategoryPositive:
		return TypePositive
	default:
		return TypeNeutral
	}
}

// categoryKeywords 按优先级排列的归类表
// 安全相关(critical)必须排在最前，避免同句中的正面词掩盖风险提示，
// 例如 "good catch, but this is dangerous" 必须归为 critical 而非 positive。
// 优先级是数据不是控制流，可独立测试。
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryCritical, []string{
		"critical", "dangerous", "severe", "urgent", "emergency", "fatal",
		"❌", "risk", "error", "wrong", "incorrect", "bad",
	}},
	{CategoryAttention, []string{
		"attention", "warning", "caution", "careful", "watch", "monitor",
		"⚠️", "concern", "issue", "problem", "improve", "adjust",
	}},
	{CategoryTeaching, []string{
		"teaching", "learning", "technique", "method", "approach", "skill",
		"📚", "🎯", "key", "important", "note", "remember",
	}},
	{CategoryPositive, []string{
		"excellent", "good", "great", "perfect", "well", "correct",
		"👍", "✓", "nice", "smooth", "effective", "proper",
	}},
}

var foldCaser = cases.Fold()

// Classify 按关键词归类批注文本，命中即止，不打分不多标签
// 只是启发式，测试关注优先级顺序而非语义正确性
func Classify(text string) Category {
	folded := foldCaser.String(text)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(folded, kw) {
				return entry.category
			}
		}
	}
	return CategoryGeneral
}
