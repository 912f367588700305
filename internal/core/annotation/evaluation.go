package annotation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ixugo/goddd/pkg/reason"
)

// Evaluation ISBAR 评价量表，7 项固定维度按 0-3 打分，可附加备注
// 维度值为 "0".."3"，空串表示未评
type Evaluation struct {
	Identification string `json:"identification"`
	Situation      string `json:"situation"`
	History        string `json:"history"`
	Examination    string `json:"examination"`
	Assessment     string `json:"assessment"`
	Recommendation string `json:"recommendation"`
	GRS            string `json:"grs"`
	Comment        string `json:"comment"`
}

const (
	// MaxEvaluationLength 批注文本的编码上限，超限截断并追加后缀
	MaxEvaluationLength  = 2000
	truncateReserve      = 50
	truncateSuffix       = "... [TRUNCATED]"
	maxScorePerCriterion = 3
)

type criterion struct {
	name   string
	labels [4]string
	value  func(*Evaluation) string
}

var criteria = []criterion{
	{"Identification", [4]string{"Not demonstrated", "Basic identification", "Good identification", "Excellent identification"},
		func(e *Evaluation) string { return e.Identification }},
	{"Situation", [4]string{"Not demonstrated", "Basic situation awareness", "Good situation awareness", "Excellent situation awareness"},
		func(e *Evaluation) string { return e.Situation }},
	{"History", [4]string{"Not demonstrated", "Minimal history taking", "Adequate history taking", "Comprehensive history"},
		func(e *Evaluation) string { return e.History }},
	{"Examination", [4]string{"Not demonstrated", "Limited examination", "Systematic examination", "Thorough examination"},
		func(e *Evaluation) string { return e.Examination }},
	{"Assessment", [4]string{"Not demonstrated", "Basic assessment", "Good assessment", "Excellent assessment"},
		func(e *Evaluation) string { return e.Assessment }},
	{"Recommendation", [4]string{"Not demonstrated", "Basic recommendation", "Good recommendation", "Excellent recommendation"},
		func(e *Evaluation) string { return e.Recommendation }},
	{"Global Rating", [4]string{"Extensive questioning", "Moderate questioning", "Some questioning", "Little/no questioning"},
		func(e *Evaluation) string { return e.GRS }},
}

func scoreLabel(c criterion, value string) string {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > maxScorePerCriterion {
		return "Not selected"
	}
	return c.labels[n]
}

// Encode 将评价序列化为带 [EVALUATION] 标记的批注文本
// 只统计已评维度，部分评分显式标注完成度，不把未评维度按 0 计
func (e *Evaluation) Encode(sessionTitle string, timestamp float64) (string, error) {
	type filled struct {
		c     criterion
		value string
		score int
	}
	done := make([]filled, 0, len(criteria))
	for _, c := range criteria {
		v := c.value(e)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxScorePerCriterion {
			return "", reason.ErrBadRequest.Withf("无效的评分值 [%s=%s]", c.name, v)
		}
		done = append(done, filled{c: c, value: v, score: n})
	}
	if len(done) == 0 {
		return "", reason.ErrBadRequest.SetMsg("请至少完成一项评价维度")
	}

	total := 0
	for _, f := range done {
		total += f.score
	}
	maxPossible := len(done) * maxScorePerCriterion

	lines := []string{
		EvaluationMarker,
		"📊 PERFORMANCE EVALUATION - " + sessionTitle,
		"⏰ Timestamp: " + FormatTimestamp(timestamp),
		"",
		"📋 COMPLETED ASSESSMENTS:",
	}
	for _, f := range done {
		lines = append(lines, fmt.Sprintf("• %s: %s/%d (%s)", f.c.name, f.value, maxScorePerCriterion, scoreLabel(f.c, f.value)))
	}
	lines = append(lines, "",
		fmt.Sprintf("📈 PARTIAL SCORE: %d/%d (%d/%d criteria completed)", total, maxPossible, len(done), len(criteria)))
	if e.Comment != "" {
		lines = append(lines, "", "💬 ADDITIONAL NOTES: "+e.Comment)
	}

	return truncate(strings.Join(lines, "\n")), nil
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxEvaluationLength {
		return s
	}
	return string(runes[:MaxEvaluationLength-truncateReserve]) + truncateSuffix
}

// DisplaySummary 展示用文本，剥离类型标记后原样返回
func DisplaySummary(commentText string) string {
	return strings.TrimLeft(strings.TrimPrefix(commentText, EvaluationMarker), "\n")
}
