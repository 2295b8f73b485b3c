package i18n

var tables = map[Language]map[Key]string{
	English: {
		KeyStudyTitle:             "Multiplication Tables",
		KeyStudyDescription:       "Learn multiplication tables",
		KeyQuizTitle:              "Quiz",
		KeyQuizDescription:        "Test your knowledge",
		KeySettings:               "Settings",
		KeySettingsDescription:    "Customize language and theme",
		KeyLanguage:               "Language",
		KeyTakeQuiz:               "Take a Quiz",
		KeyBackToStudy:            "Back to Study",
		KeyEnterAnswer:            "Enter your answer",
		KeySubmit:                 "Submit",
		KeyScore:                  "Score",
		KeyTableScore:             "Table {{table}} score",
		KeyGlobalScore:            "Global score",
		KeyCorrect:                "Correct! 🎉",
		KeyIncorrect:              "Incorrect. The answer was",
		KeyEnglish:                "English",
		KeyPortuguese:             "Portuguese",
		KeySpanish:                "Spanish",
		KeySelectQuizMode:         "Select Quiz Mode",
		KeyInputMode:              "Input Mode",
		KeyMultipleChoiceMode:     "Multiple Choice",
		KeyInputModeDesc:          "Type the answer manually",
		KeyMultipleChoiceModeDesc: "Select from options",
		KeyNextQuestion:           "Next Question",
		KeyChooseAnswer:           "Choose the correct answer",
		KeyStatistics:             "Statistics",
		KeyStatisticsDescription:  "Track your progress",
		KeyTable:                  "Table",
		KeyAllTables:              "All",
		KeyNoAttempts:             "No attempts",
		KeyTheme:                  "Theme",
		KeyLoading:                "Loading...",
		KeyAbout:                  "About Me",
		KeyAboutDescription:       "Hello! This is Sérgio Toledo from Brazil, I am a Software Engineer and passionate about programming.\n\nI created TilTwelve to help kids learn multiplication tables in a fun and interactive way.",
		KeyCompetitionTitle:       "Competition",
		KeyCompetitionDescription: "Compete with a friend",
		KeyPlayer1:                "Player 1",
		KeyPlayer2:                "Player 2",
		KeyCorrectAnswer:          "Correct Answer",
		KeyWrongAnswer:            "Wrong Answer",
		KeyStartGame:              "Start Game",
		KeyFinalScore:             "Final Score",
		KeyWinner:                 "Winner",
		KeyPlayAgain:              "Play Again",
		KeyReturn:                 "Return",
		KeyDraw:                   "It's a draw!",
		KeyRound:                  "Round",
		KeyHideAnswers:            "Hide answers",
		KeyShowAnswers:            "Show answers",
		KeyThemeLight:             "Light",
		KeyThemeDark:              "Dark",
		KeyThemeKids:              "Kids",
		KeyPlayer1Keys:            "keys 1-4",
		KeyPlayer2Keys:            "keys 7-0",
		KeyAttempts:               "attempts",
		KeyQuit:                   "quit",
		KeyBack:                   "back",
		KeyReveal:                 "reveal",
		KeyNavigate:               "navigate",
		KeySelect:                 "select",
		KeyResetDone:              "All data erased",
		KeyExit:                   "Exit",
		KeyTooSmall:               "Terminal too small!\n\nResize to at least {{min}}\n\nCurrent: {{size}}",
	},
	Portuguese: {
		KeyStudyTitle:             "Tabuadas",
		KeyStudyDescription:       "Aprenda tabuadas",
		KeyQuizTitle:              "Quiz",
		KeyQuizDescription:        "Teste seu conhecimento",
		KeySettings:               "Configurações",
		KeySettingsDescription:    "Personalize idioma e tema",
		KeyLanguage:               "Idioma",
		KeyTakeQuiz:               "Fazer Quiz",
		KeyBackToStudy:            "Voltar ao Estudo",
		KeyEnterAnswer:            "Digite sua resposta",
		KeySubmit:                 "Enviar",
		KeyScore:                  "Pontuação",
		KeyTableScore:             "Pontuação da tabuada {{table}}",
		KeyGlobalScore:            "Pontuação global",
		KeyCorrect:                "Correto! 🎉",
		KeyIncorrect:              "Incorreto. A resposta era",
		KeyEnglish:                "Inglês",
		KeyPortuguese:             "Português",
		KeySpanish:                "Espanhol",
		KeySelectQuizMode:         "Selecione o Modo do Quiz",
		KeyInputMode:              "Modo Digitação",
		KeyMultipleChoiceMode:     "Múltipla Escolha",
		KeyInputModeDesc:          "Digite a resposta manualmente",
		KeyMultipleChoiceModeDesc: "Selecione entre as opções",
		KeyNextQuestion:           "Próxima Questão",
		KeyChooseAnswer:           "Escolha a resposta correta",
		KeyStatistics:             "Estatísticas",
		KeyStatisticsDescription:  "Acompanhe seu desempenho",
		KeyTable:                  "Tabuada",
		KeyAllTables:              "Todas",
		KeyNoAttempts:             "Sem tentativas",
		KeyTheme:                  "Tema",
		KeyLoading:                "Carregando...",
		KeyAbout:                  "Sobre Mim",
		KeyAboutDescription:       "Olá! Meu nome é Sérgio Toledo, sou Engenheiro de Software e apaixonado por programação.\n\nCriei o TilTwelve para ajudar crianças a aprenderem tabuadas de uma forma divertida e interativa.",
		KeyCompetitionTitle:       "Competição",
		KeyCompetitionDescription: "Compita com um amigo",
		KeyPlayer1:                "Jogador 1",
		KeyPlayer2:                "Jogador 2",
		KeyCorrectAnswer:          "Resposta Correta",
		KeyWrongAnswer:            "Resposta Errada",
		KeyStartGame:              "Iniciar Jogo",
		KeyFinalScore:             "Pontuação Final",
		KeyWinner:                 "Vencedor",
		KeyPlayAgain:              "Jogar Novamente",
		KeyReturn:                 "Voltar",
		KeyDraw:                   "Empate!",
		KeyRound:                  "Rodada",
		KeyHideAnswers:            "Esconder respostas",
		KeyShowAnswers:            "Mostrar respostas",
		KeyThemeLight:             "Claro",
		KeyThemeDark:              "Escuro",
		KeyThemeKids:              "Infantil",
		KeyPlayer1Keys:            "teclas 1-4",
		KeyPlayer2Keys:            "teclas 7-0",
		KeyAttempts:               "tentativas",
		KeyQuit:                   "sair",
		KeyBack:                   "voltar",
		KeyReveal:                 "revelar",
		KeyNavigate:               "navegar",
		KeySelect:                 "selecionar",
		KeyResetDone:              "Todos os dados apagados",
		KeyExit:                   "Sair",
		KeyTooSmall:               "Terminal muito pequeno!\n\nAumente para pelo menos {{min}}\n\nAtual: {{size}}",
	},
	Spanish: {
		KeyStudyTitle:             "Tablas de Multiplicar",
		KeyStudyDescription:       "Aprende tablas de multiplicar",
		KeyQuizTitle:              "Quiz",
		KeyQuizDescription:        "Prueba tu conocimiento",
		KeySettings:               "Ajustes",
		KeySettingsDescription:    "Personaliza idioma y tema",
		KeyLanguage:               "Idioma",
		KeyTakeQuiz:               "Hacer Quiz",
		KeyBackToStudy:            "Volver al Estudio",
		KeyEnterAnswer:            "Ingresa tu respuesta",
		KeySubmit:                 "Enviar",
		KeyScore:                  "Puntuación",
		KeyTableScore:             "Puntuación de la tabla {{table}}",
		KeyGlobalScore:            "Puntuación global",
		KeyCorrect:                "¡Correcto! 🎉",
		KeyIncorrect:              "Incorrecto. La respuesta era",
		KeyEnglish:                "Inglés",
		KeyPortuguese:             "Portugués",
		KeySpanish:                "Español",
		KeySelectQuizMode:         "Seleccionar Modo de Quiz",
		KeyInputMode:              "Modo Entrada",
		KeyMultipleChoiceMode:     "Opción Múltiple",
		KeyInputModeDesc:          "Escribe la respuesta manualmente",
		KeyMultipleChoiceModeDesc: "Selecciona entre opciones",
		KeyNextQuestion:           "Siguiente Pregunta",
		KeyChooseAnswer:           "Elige la respuesta correcta",
		KeyStatistics:             "Estadísticas",
		KeyStatisticsDescription:  "Sigue tu progreso",
		KeyTable:                  "Tabla",
		KeyAllTables:              "Todas",
		KeyNoAttempts:             "Sin intentos",
		KeyTheme:                  "Tema",
		KeyLoading:                "Cargando...",
		KeyAbout:                  "Sobre Mí",
		KeyAboutDescription:       "¡Hola! Soy Sérgio Toledo de Brasil, soy Ingeniero de Software y apasionado por la programación.\n\nCreé TilTwelve para ayudar a los niños a aprender las tablas de multiplicar de una manera divertida e interactiva.",
		KeyCompetitionTitle:       "Competencia",
		KeyCompetitionDescription: "Compite con un amigo",
		KeyPlayer1:                "Jugador 1",
		KeyPlayer2:                "Jugador 2",
		KeyCorrectAnswer:          "Respuesta Correcta",
		KeyWrongAnswer:            "Respuesta Incorrecta",
		KeyStartGame:              "Comenzar Juego",
		KeyFinalScore:             "Puntuación Final",
		KeyWinner:                 "Ganador",
		KeyPlayAgain:              "Jugar de Nuevo",
		KeyReturn:                 "Volver",
		KeyDraw:                   "¡Empate!",
		KeyRound:                  "Ronda",
		KeyHideAnswers:            "Ocultar respuestas",
		KeyShowAnswers:            "Mostrar respuestas",
		KeyThemeLight:             "Claro",
		KeyThemeDark:              "Oscuro",
		KeyThemeKids:              "Infantil",
		KeyPlayer1Keys:            "teclas 1-4",
		KeyPlayer2Keys:            "teclas 7-0",
		KeyAttempts:               "intentos",
		KeyQuit:                   "salir",
		KeyBack:                   "volver",
		KeyReveal:                 "revelar",
		KeyNavigate:               "navegar",
		KeySelect:                 "seleccionar",
		KeyResetDone:              "Todos los datos borrados",
		KeyExit:                   "Salir",
		KeyTooSmall:               "¡Terminal demasiado pequeña!\n\nAmplía a por lo menos {{min}}\n\nActual: {{size}}",
	},
}
