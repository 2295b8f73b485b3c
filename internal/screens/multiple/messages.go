package multiple

// nextQuestionMsg ends the feedback delay started by answer number Seq.
type nextQuestionMsg struct {
	Seq int
}
