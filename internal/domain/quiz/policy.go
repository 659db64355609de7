package quiz

// Limites para participantes não autenticados.
const (
	AnonymousQuestionLimit = 10
	AnonymousTimerSeconds  = 120
)

// ShouldGate indica se a sessão deve parar e pedir autenticação.
// Qualquer um dos dois limites basta.
func ShouldGate(authenticated bool, questionsAnswered, elapsedSeconds int) bool {
	if authenticated {
		return false
	}
	return questionsAnswered >= AnonymousQuestionLimit || elapsedSeconds >= AnonymousTimerSeconds
}
