package bz

// 业务唯一 ID 前缀
const (
	IDPrefixSession    = "se"
	IDPrefixVideo      = "sv"
	IDPrefixComment    = "vc"
	IDPrefixAssignment = "sa"
	IDPrefixDoctor     = "dr"
)
