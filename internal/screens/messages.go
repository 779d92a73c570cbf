package screens

// Static messages shown by the screens. Backend failures of every kind
// collapse into one of these.
const (
	MsgCredentialsRequired = "Email and password are required."
	MsgLoginFailed         = "Login failed. Please check your email and password."
	MsgPasswordMismatch    = "Passwords don’t match."
	MsgSignupFailed        = "Could not create account. Please try again."
	MsgSignupLogin         = "Account created. Please log in."

	MsgWelcome = "Welcome"

	MsgCoursesFailed     = "Failed to load courses. Please try again."
	MsgCoursesLoading    = "Fetching your courses…"
	MsgCourseNameNeeded  = "Course name is required."
	MsgCreateFailed      = "Could not create course. Please try again."
	MsgFileNeeded        = "Choose a file to upload."
	MsgUploadFailed      = "Could not upload course. Please try again."
	MsgPlaylistURLNeeded = "Enter a YouTube playlist link."
	MsgImportFailed      = "Could not import lectures. Please check the playlist link."

	MsgCourseFailed          = "Could not load course."
	MsgSummaryFailed         = "Could not fetch summary. Please try again."
	MsgSummaryGenerateFailed = "Could not generate summary. Please try again."
	MsgSummaryEmpty          = "No summary yet. Generate one to get started."
	MsgFlashcardsFailed      = "Could not fetch flashcards. Please try again."
	MsgFlashcardsGenFailed   = "Could not generate flashcards. Please try again."
	MsgPastQuizzesFailed     = "Could not fetch past quizzes."
	MsgQuizDetailFailed      = "Could not load quiz."
	MsgQuizGenerateFailed    = "Could not generate quiz. Please try again."
	MsgAnswerAll             = "Please answer all questions before submitting."
	MsgSubmitFailed          = "Could not submit quiz. Please try again."
	MsgNothingToRead         = "Nothing to read yet."
	MsgSpeechFailed          = "Could not generate audio. Please try again."

	MsgChatError       = "⚠️ Error getting response"
	MsgUploading       = "📄 Uploading file..."
	MsgUploadedPrefix  = "✅ "
	MsgPDFUploadFailed = "⚠️ Failed to upload file."

	MsgMentorNeeded  = "Choose a mentor first."
	MsgMessageNeeded = "Briefly describe what was confusing."
)
