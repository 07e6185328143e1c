package content

// seedTopics returns the embedded topic catalog. Content is authored in
// Spanish, matching the app's audience.
func seedTopics() []Topic {
	return []Topic{
		{
			ID:          "creatividad",
			Title:       "Creatividad",
			Description: "Desarrolla tu pensamiento creativo y aprende a ver problemas desde nuevas perspectivas.",
			Icon:        "🎨",
			Difficulty:  TierBeginner,
			XPReward:    100,
			Questions: []Question{
				MultipleChoice{
					Info: Info{
						ID:          "c1",
						Prompt:      "¿Cuál de estas técnicas NO es comúnmente usada para estimular la creatividad?",
						Difficulty:  DifficultyEasy,
						Category:    "Técnicas Creativas",
						XPReward:    10,
						Explanation: "El pensamiento crítico es más analítico y evaluativo, mientras que las otras opciones son técnicas específicamente diseñadas para estimular la creatividad.",
					},
					Options: []Option{
						{ID: "a", Text: "Brainstorming"},
						{ID: "b", Text: "Pensamiento crítico", Correct: true},
						{ID: "c", Text: "Mind mapping"},
						{ID: "d", Text: "Pensamiento lateral"},
					},
				},
				Open{
					Info: Info{
						ID:          "c2",
						Prompt:      "Contá una situación donde tuviste que ser creativo para resolver un problema.",
						Difficulty:  DifficultyMedium,
						Category:    "Reflexión",
						XPReward:    15,
						Explanation: "Reflexionar sobre experiencias propias ayuda a fortalecer la creatividad.",
					},
					Placeholder: "Escribí tu experiencia...",
				},
				TrueFalse{
					Info: Info{
						ID:          "c3",
						Prompt:      "El pensamiento lateral es una técnica para estimular la creatividad.",
						Difficulty:  DifficultyEasy,
						Category:    "Técnicas Creativas",
						XPReward:    10,
						Explanation: "Correcto, el pensamiento lateral es ampliamente usado para fomentar la creatividad.",
					},
					Statement: "El pensamiento lateral es una técnica para estimular la creatividad.",
					Answer:    true,
				},
				Order{
					Info: Info{
						ID:          "c4",
						Prompt:      "Ordená las etapas clásicas del proceso creativo.",
						Difficulty:  DifficultyMedium,
						Category:    "Proceso Creativo",
						XPReward:    15,
						Explanation: "El proceso creativo clásico va de la preparación a la verificación, pasando por la incubación y la iluminación.",
					},
					Items:        []string{"Iluminación", "Preparación", "Verificación", "Incubación"},
					CorrectOrder: []string{"Preparación", "Incubación", "Iluminación", "Verificación"},
				},
				Match{
					Info: Info{
						ID:          "c5",
						Prompt:      "Relacioná cada técnica con su descripción.",
						Difficulty:  DifficultyMedium,
						Category:    "Técnicas Creativas",
						XPReward:    15,
						Explanation: "Conocer para qué sirve cada técnica ayuda a elegir la adecuada en cada situación.",
					},
					Pairs: []Pair{
						{Left: "Brainstorming", Right: "Generar muchas ideas sin juzgarlas"},
						{Left: "Mind mapping", Right: "Organizar ideas de forma visual"},
						{Left: "SCAMPER", Right: "Transformar ideas existentes con preguntas"},
					},
				},
				FillInBlank{
					Info: Info{
						ID:          "c6",
						Prompt:      "Completá la frase sobre el pensamiento divergente.",
						Difficulty:  DifficultyHard,
						Category:    "Conceptos",
						XPReward:    20,
						Explanation: "El pensamiento divergente genera muchas alternativas; el convergente selecciona la mejor.",
					},
					Text:    "El pensamiento [tipo] genera muchas alternativas, mientras que el convergente elige [cantidad].",
					Blanks:  []string{"tipo", "cantidad"},
					Answers: []string{"divergente", "una"},
				},
			},
		},
		{
			ID:          "libertad",
			Title:       "Libertad",
			Description: "Explorá qué significa la libertad y cómo se relaciona con la responsabilidad.",
			Icon:        "🕊️",
			Difficulty:  TierIntermediate,
			XPReward:    100,
			Questions: []Question{
				TrueFalse{
					Info: Info{
						ID:          "l1",
						Prompt:      "La libertad implica ausencia total de límites.",
						Difficulty:  DifficultyEasy,
						Category:    "Conceptos",
						XPReward:    10,
						Explanation: "La libertad convive con límites: los derechos de los demás y la responsabilidad propia.",
					},
					Statement: "La libertad implica ausencia total de límites.",
					Answer:    false,
				},
				MultipleChoice{
					Info: Info{
						ID:          "l2",
						Prompt:      "¿Qué filósofo asoció la libertad con la responsabilidad radical de elegir?",
						Difficulty:  DifficultyMedium,
						Category:    "Filosofía",
						XPReward:    15,
						Explanation: "Para Sartre estamos 'condenados a ser libres': cada elección nos hace responsables.",
					},
					Options: []Option{
						{ID: "a", Text: "Jean-Paul Sartre", Correct: true},
						{ID: "b", Text: "Platón"},
						{ID: "c", Text: "René Descartes"},
						{ID: "d", Text: "Auguste Comte"},
					},
				},
				Open{
					Info: Info{
						ID:          "l3",
						Prompt:      "¿En qué momento de tu vida te sentiste más libre? ¿Qué lo hizo posible?",
						Difficulty:  DifficultyMedium,
						Category:    "Reflexión",
						XPReward:    15,
						Explanation: "Identificar las condiciones de tu propia libertad te ayuda a cultivarlas.",
					},
					Placeholder: "Escribí tu reflexión...",
				},
				ListenAndWrite{
					Info: Info{
						ID:          "l4",
						Prompt:      "Escuchá el audio y escribí la frase exacta.",
						Difficulty:  DifficultyHard,
						Category:    "Atención",
						XPReward:    20,
						Explanation: "La escucha atenta es una forma de presencia y de libertad interior.",
					},
					AudioPath: "audio/libertad-frase.mp3",
					Answer:    "La libertad es la capacidad de elegir quién querés ser",
				},
				FillInBlank{
					Info: Info{
						ID:          "l5",
						Prompt:      "Completá la frase de Viktor Frankl.",
						Difficulty:  DifficultyHard,
						Category:    "Filosofía",
						XPReward:    20,
						Explanation: "Frankl ubicó la última libertad humana en la actitud frente a las circunstancias.",
					},
					Text:    "Entre el estímulo y la respuesta hay un [lugar]; en él está nuestra [capacidad] de elegir.",
					Blanks:  []string{"lugar", "capacidad"},
					Answers: []string{"espacio", "libertad"},
				},
			},
		},
		{
			ID:          "autoconocimiento",
			Title:       "Autoconocimiento",
			Description: "Conocé tus emociones, valores y hábitos para tomar mejores decisiones.",
			Icon:        "🪞",
			Difficulty:  TierAdvanced,
			XPReward:    120,
			Questions: []Question{
				Order{
					Info: Info{
						ID:          "a1",
						Prompt:      "Ordená los pasos de un ejercicio básico de introspección.",
						Difficulty:  DifficultyMedium,
						Category:    "Práctica",
						XPReward:    15,
						Explanation: "Primero se observa sin juzgar, después se nombra lo observado y recién entonces se decide.",
					},
					Items:        []string{"Decidir un cambio", "Observar sin juzgar", "Nombrar la emoción"},
					CorrectOrder: []string{"Observar sin juzgar", "Nombrar la emoción", "Decidir un cambio"},
				},
				Match{
					Info: Info{
						ID:          "a2",
						Prompt:      "Relacioná cada emoción básica con su función.",
						Difficulty:  DifficultyMedium,
						Category:    "Emociones",
						XPReward:    15,
						Explanation: "Cada emoción básica cumple una función adaptativa.",
					},
					Pairs: []Pair{
						{Left: "Miedo", Right: "Protegernos de un peligro"},
						{Left: "Enojo", Right: "Defender un límite"},
						{Left: "Tristeza", Right: "Procesar una pérdida"},
					},
				},
				Open{
					Info: Info{
						ID:          "a3",
						Prompt:      "Escribí tres valores que guían tus decisiones y por qué.",
						Difficulty:  DifficultyHard,
						Category:    "Reflexión",
						XPReward:    20,
						Explanation: "Hacer explícitos tus valores vuelve más coherentes tus decisiones.",
					},
					Placeholder: "Mis valores son...",
				},
				TrueFalse{
					Info: Info{
						ID:          "a4",
						Prompt:      "Nombrar una emoción en voz alta tiende a reducir su intensidad.",
						Difficulty:  DifficultyEasy,
						Category:    "Emociones",
						XPReward:    10,
						Explanation: "Ponerle nombre a la emoción ('affect labeling') reduce la reactividad.",
					},
					Statement: "Nombrar una emoción en voz alta tiende a reducir su intensidad.",
					Answer:    true,
				},
			},
		},
	}
}
