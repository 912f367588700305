package annotation

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Category
	}{
		{"this step looks dangerous", CategoryCritical},
		{"pay attention to the suction here", CategoryAttention},
		{"nice technique on the suture", CategoryTeaching}, // technique 优先于 nice
		{"excellent work", CategoryPositive},
		{"continue to the next phase", CategoryGeneral},
		{"", CategoryGeneral},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

// 优先级顺序：同句混合多类关键词时，安全相关的归类不能被掩盖
func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		text string
		want Category
	}{
		{"good job but this is dangerous", CategoryCritical},
		{"great catch, still a concern here", CategoryAttention},
		{"important technique, well done", CategoryTeaching},
		{"WRONG plane, otherwise excellent", CategoryCritical}, // 大小写折叠
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestCategoryCommentType(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryCritical, TypeCritical},
		{CategoryAttention, TypeWarning},
		{CategoryPositive, TypePositive},
		{CategoryTeaching, TypeNeutral},
		{CategoryGeneral, TypeNeutral},
	}
	for _, tt := range tests {
		if got := tt.category.CommentType(); got != tt.want {
			t.Errorf("%s.CommentType() = %s, want %s", tt.category, got, tt.want)
		}
	}
}
