package annotation

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEvaluationEncode(t *testing.T) {
	e := Evaluation{
		Identification: "2",
		Assessment:     "3",
		Comment:        "钳子的走位需要再稳一些",
	}
	text, err := e.Encode("Scenario: Sepsis", 95)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(text, EvaluationMarker) {
		t.Fatal("编码结果缺少类型标记")
	}
	for _, want := range []string{
		"⏰ Timestamp: 01:35",
		"• Identification: 2/3 (Good identification)",
		"• Assessment: 3/3 (Excellent assessment)",
		"📈 PARTIAL SCORE: 5/6 (2/7 criteria completed)",
		"💬 ADDITIONAL NOTES: 钳子的走位需要再稳一些",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("编码结果缺少 %q\n%s", want, text)
		}
	}
	// 未评维度不出现在结果里，也不按 0 计分
	if strings.Contains(text, "Situation:") {
		t.Error("未评维度不应出现在编码结果中")
	}
}

func TestEvaluationEncodeEmpty(t *testing.T) {
	var e Evaluation
	if _, err := e.Encode("Session", 0); err == nil {
		t.Fatal("全部未评时应报错")
	}
}

func TestEvaluationEncodeInvalidScore(t *testing.T) {
	e := Evaluation{GRS: "7"}
	if _, err := e.Encode("Session", 0); err == nil {
		t.Fatal("越界评分应报错")
	}
}

func TestEvaluationTruncation(t *testing.T) {
	e := Evaluation{
		Identification: "1",
		Comment:        strings.Repeat("非常详细的备注。", 400),
	}
	text, err := e.Encode("Session", 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := utf8.RuneCountInString(text); got > MaxEvaluationLength {
		t.Fatalf("截断后长度 %d 超过上限 %d", got, MaxEvaluationLength)
	}
	if !strings.HasSuffix(text, truncateSuffix) {
		t.Fatal("超长编码结果缺少截断后缀")
	}
	want := MaxEvaluationLength - truncateReserve + utf8.RuneCountInString(truncateSuffix)
	if got := utf8.RuneCountInString(text); got != want {
		t.Fatalf("截断后长度 %d，期望 %d", got, want)
	}
}

func TestDisplaySummary(t *testing.T) {
	e := Evaluation{Situation: "2"}
	text, err := e.Encode("Session", 30)
	if err != nil {
		t.Fatal(err)
	}
	display := DisplaySummary(text)
	if strings.Contains(display, EvaluationMarker) {
		t.Fatal("展示文本不应包含类型标记")
	}
	if !strings.HasPrefix(display, "📊 PERFORMANCE EVALUATION") {
		t.Fatalf("展示文本开头异常: %q", display)
	}
}

func TestIsEvaluation(t *testing.T) {
	c := Comment{CommentText: EvaluationMarker + "\nsummary"}
	if !c.IsEvaluation() {
		t.Fatal("带标记的批注应识别为评价")
	}
	c.CommentText = "普通批注"
	if c.IsEvaluation() {
		t.Fatal("普通批注不应识别为评价")
	}
}
