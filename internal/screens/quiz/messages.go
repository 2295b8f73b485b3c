package quiz

// nextQuestionMsg is sent when the feedback delay ends. Seq ties the message
// to the answer that started the delay so stale ticks are dropped.
type nextQuestionMsg struct {
	Seq int
}
