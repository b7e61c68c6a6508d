package service

import "disc-match/internal/domain"

// ComputeProfile convierte las respuestas del cuestionario en un perfil DISC.
// Funcion pura, sin I/O.
//
// Respuestas con un valor fuera de {D,I,S,C} se descartan en silencio: una
// respuesta mala nunca falla la evaluacion completa. El tipo dominante es la
// categoria con el conteo estrictamente mayor; los empates se resuelven con
// el orden fijo de domain.Categories (D > I > S > C), de modo que una lista
// vacia de respuestas da dominante D con todos los conteos en cero.
func ComputeProfile(answers []domain.Answer, labels domain.LabelSet) (domain.Category, string, domain.ScoreSet) {
	scores := domain.NewScoreSet()
	for _, ans := range answers {
		if cat, ok := domain.ParseCategory(ans.Value); ok {
			scores[cat]++
		}
	}

	dominant := domain.Categories[0]
	for _, cat := range domain.Categories[1:] {
		if scores[cat] > scores[dominant] {
			dominant = cat
		}
	}

	return dominant, labels[dominant], scores
}
