package i18n

// Key identifies a translatable string.
type Key string

const (
	KeyStudyTitle             Key = "studyTitle"
	KeyStudyDescription       Key = "studyDescription"
	KeyQuizTitle              Key = "quizTitle"
	KeyQuizDescription        Key = "quizDescription"
	KeySettings               Key = "settings"
	KeySettingsDescription    Key = "settingsDescription"
	KeyLanguage               Key = "language"
	KeyTakeQuiz               Key = "takeQuiz"
	KeyBackToStudy            Key = "backToStudy"
	KeyEnterAnswer            Key = "enterAnswer"
	KeySubmit                 Key = "submit"
	KeyScore                  Key = "score"
	KeyTableScore             Key = "tableScore"
	KeyGlobalScore            Key = "globalScore"
	KeyCorrect                Key = "correct"
	KeyIncorrect              Key = "incorrect"
	KeyEnglish                Key = "english"
	KeyPortuguese             Key = "portuguese"
	KeySpanish                Key = "spanish"
	KeySelectQuizMode         Key = "selectQuizMode"
	KeyInputMode              Key = "inputMode"
	KeyMultipleChoiceMode     Key = "multipleChoiceMode"
	KeyInputModeDesc          Key = "inputModeDesc"
	KeyMultipleChoiceModeDesc Key = "multipleChoiceModeDesc"
	KeyNextQuestion           Key = "nextQuestion"
	KeyChooseAnswer           Key = "chooseAnswer"
	KeyStatistics             Key = "statistics"
	KeyStatisticsDescription  Key = "statisticsDescription"
	KeyTable                  Key = "table"
	KeyAllTables              Key = "allTables"
	KeyNoAttempts             Key = "noAttempts"
	KeyTheme                  Key = "theme"
	KeyLoading                Key = "loading"
	KeyAbout                  Key = "about"
	KeyAboutDescription       Key = "aboutDescription"
	KeyCompetitionTitle       Key = "competitionTitle"
	KeyCompetitionDescription Key = "competitionDescription"
	KeyPlayer1                Key = "player1"
	KeyPlayer2                Key = "player2"
	KeyCorrectAnswer          Key = "correctAnswer"
	KeyWrongAnswer            Key = "wrongAnswer"
	KeyStartGame              Key = "startGame"
	KeyFinalScore             Key = "finalScore"
	KeyWinner                 Key = "winner"
	KeyPlayAgain              Key = "playAgain"
	KeyReturn                 Key = "return"

	// Terminal-only strings.
	KeyDraw        Key = "draw"
	KeyRound       Key = "round"
	KeyHideAnswers Key = "hideAnswers"
	KeyShowAnswers Key = "showAnswers"
	KeyThemeLight  Key = "themeLight"
	KeyThemeDark   Key = "themeDark"
	KeyThemeKids   Key = "themeKids"
	KeyPlayer1Keys Key = "player1Keys"
	KeyPlayer2Keys Key = "player2Keys"
	KeyAttempts    Key = "attempts"
	KeyQuit        Key = "quit"
	KeyBack        Key = "back"
	KeyReveal      Key = "reveal"
	KeyNavigate    Key = "navigate"
	KeySelect      Key = "select"
	KeyResetDone   Key = "resetDone"
	KeyExit        Key = "exit"
	KeyTooSmall    Key = "tooSmall"
)
