package domain

// Answer es una respuesta individual del cuestionario. Es transitoria: solo
// se agrega al tally, nunca se persiste.
type Answer struct {
	QuestionID int    `json:"question_id"`
	Value      string `json:"value"`
}

// ScoreSet cuenta respuestas validas por categoria.
type ScoreSet map[Category]int

// Total devuelve la suma de todos los conteos.
func (s ScoreSet) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// NewScoreSet crea un ScoreSet con las cuatro categorias en cero.
func NewScoreSet() ScoreSet {
	s := make(ScoreSet, len(Categories))
	for _, c := range Categories {
		s[c] = 0
	}
	return s
}

// Respondent es el resultado persistido de una evaluacion. Inmutable despues
// del insert; la unica operacion posterior es el borrado.
type Respondent struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	DominantType Category `json:"dominant_type"`
	Animal       string   `json:"animal"`
	Scores       ScoreSet `json:"scores"`
}
