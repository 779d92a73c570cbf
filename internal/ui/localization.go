package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyFile            = "file"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyLogout          = "logout"
	KeyLogin           = "login"
	KeySignup          = "signup"
	KeyEmail           = "email"
	KeyPassword        = "password"
	KeyConfirmPassword = "confirm_password"
	KeyFirstName       = "first_name"
	KeyLastName        = "last_name"
	KeyUniversity      = "university"
	KeySemester        = "semester"
	KeyNoAccount       = "no_account"
	KeyHaveAccount     = "have_account"
	KeyMyCourses       = "my_courses"
	KeyNewCourse       = "new_course"
	KeyCourseName      = "course_name"
	KeyCourseContent   = "course_content"
	KeyCreate          = "create"
	KeyUploadFile      = "upload_file"
	KeyImportLectures  = "import_lectures"
	KeyPlaylistURL     = "playlist_url"
	KeySearchCourses   = "search_courses"
	KeyRetry           = "retry"
	KeyBack            = "back"
	KeySummary         = "summary"
	KeyFlashcards      = "flashcards"
	KeyQuiz            = "quiz"
	KeyGenerate        = "generate"
	KeyRegenerate      = "regenerate"
	KeyListen          = "listen"
	KeyFlip            = "flip"
	KeyNewQuiz         = "new_quiz"
	KeySubmit          = "submit"
	KeyPastQuizzes     = "past_quizzes"
	KeyNoPastQuizzes   = "no_past_quizzes"
	KeyClose           = "close"
	KeyChatbot         = "chatbot"
	KeyAskAnything     = "ask_anything"
	KeySend            = "send"
	KeyUploadPDF       = "upload_pdf"
	KeyCommunity       = "community"
	KeyTopic           = "topic"
	KeySortBy          = "sort_by"
	KeySearchQuizzes   = "search_quizzes"
	KeyNeedsReview     = "needs_review"
	KeyLeaderboard     = "leaderboard"
	KeyHighlights      = "highlights"
	KeyAskForHelp      = "ask_for_help"
	KeyMentors         = "mentors"
	KeyResources       = "resources"
	KeyHelpMessage     = "help_message"
	KeySendRequest     = "send_request"
	KeyAPIBaseURL      = "api_base_url"
	KeyTimeout         = "timeout"
	KeyRetries         = "retries"
	KeySummaryLength   = "summary_length"
	KeySpeechLanguage  = "speech_language"
	KeyAudioDirectory  = "audio_directory"
	KeyBrowse          = "browse"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyAudioSaved      = "audio_saved"
	KeyLoading         = "loading"
	KeyNoFlashcards    = "no_flashcards"
	KeyAnswered        = "answered"
	KeyScore           = "score"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"hi": "हिन्दी",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "StudyBuddy",
		KeyFile:            "File",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyLogout:          "Logout",
		KeyLogin:           "Login",
		KeySignup:          "Sign up",
		KeyEmail:           "Email",
		KeyPassword:        "Password",
		KeyConfirmPassword: "Confirm password",
		KeyFirstName:       "First name",
		KeyLastName:        "Last name",
		KeyUniversity:      "University",
		KeySemester:        "Current semester",
		KeyNoAccount:       "Don't have an account? Sign up",
		KeyHaveAccount:     "Already have an account? Login",
		KeyMyCourses:       "My Courses",
		KeyNewCourse:       "New course",
		KeyCourseName:      "Course name",
		KeyCourseContent:   "Paste course content",
		KeyCreate:          "Create",
		KeyUploadFile:      "Upload file",
		KeyImportLectures:  "Import lectures",
		KeyPlaylistURL:     "YouTube playlist URL",
		KeySearchCourses:   "Search courses",
		KeyRetry:           "Retry",
		KeyBack:            "Back",
		KeySummary:         "Summary",
		KeyFlashcards:      "Flashcards",
		KeyQuiz:            "Quiz",
		KeyGenerate:        "Generate",
		KeyRegenerate:      "Regenerate",
		KeyListen:          "Listen",
		KeyFlip:            "Flip",
		KeyNewQuiz:         "Generate new quiz",
		KeySubmit:          "Submit",
		KeyPastQuizzes:     "Past quizzes",
		KeyNoPastQuizzes:   "No quizzes yet.",
		KeyClose:           "Close",
		KeyChatbot:         "Chatbot",
		KeyAskAnything:     "Ask anything...",
		KeySend:            "Send",
		KeyUploadPDF:       "Upload PDF",
		KeyCommunity:       "Community",
		KeyTopic:           "Topic",
		KeySortBy:          "Sort by",
		KeySearchQuizzes:   "Search quizzes",
		KeyNeedsReview:     "Quizzes that need review",
		KeyLeaderboard:     "Top mentors",
		KeyHighlights:      "Community highlights",
		KeyAskForHelp:      "Ask for help",
		KeyMentors:         "Suggested mentors",
		KeyResources:       "Resources",
		KeyHelpMessage:     "What do you need help with?",
		KeySendRequest:     "Send request",
		KeyAPIBaseURL:      "Backend URL",
		KeyTimeout:         "Request timeout (seconds)",
		KeyRetries:         "Retry attempts",
		KeySummaryLength:   "Default summary length",
		KeySpeechLanguage:  "Speech language",
		KeyAudioDirectory:  "Audio directory",
		KeyBrowse:          "Browse",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyAudioSaved:      "Audio saved",
		KeyLoading:         "Loading...",
		KeyNoFlashcards:    "No flashcards yet. Generate a set to start studying.",
		KeyAnswered:        "Answered",
		KeyScore:           "Score",
	}

	l.texts["hi"] = map[string]string{
		KeyAppTitle:        "StudyBuddy",
		KeyFile:            "फ़ाइल",
		KeySettings:        "सेटिंग्स",
		KeyLanguage:        "भाषा",
		KeyLogout:          "लॉग आउट",
		KeyLogin:           "लॉग इन",
		KeySignup:          "साइन अप",
		KeyEmail:           "ईमेल",
		KeyPassword:        "पासवर्ड",
		KeyConfirmPassword: "पासवर्ड की पुष्टि करें",
		KeyFirstName:       "पहला नाम",
		KeyLastName:        "अंतिम नाम",
		KeyUniversity:      "विश्वविद्यालय",
		KeySemester:        "वर्तमान सेमेस्टर",
		KeyNoAccount:       "खाता नहीं है? साइन अप करें",
		KeyHaveAccount:     "पहले से खाता है? लॉग इन करें",
		KeyMyCourses:       "मेरे कोर्स",
		KeyNewCourse:       "नया कोर्स",
		KeyCourseName:      "कोर्स का नाम",
		KeyCourseContent:   "कोर्स सामग्री चिपकाएँ",
		KeyCreate:          "बनाएँ",
		KeyUploadFile:      "फ़ाइल अपलोड करें",
		KeyImportLectures:  "लेक्चर आयात करें",
		KeyPlaylistURL:     "YouTube प्लेलिस्ट URL",
		KeySearchCourses:   "कोर्स खोजें",
		KeyRetry:           "फिर से कोशिश करें",
		KeyBack:            "वापस",
		KeySummary:         "सारांश",
		KeyFlashcards:      "फ्लैशकार्ड",
		KeyQuiz:            "क्विज़",
		KeyGenerate:        "बनाएँ",
		KeyRegenerate:      "फिर से बनाएँ",
		KeyListen:          "सुनें",
		KeyFlip:            "पलटें",
		KeyNewQuiz:         "नया क्विज़ बनाएँ",
		KeySubmit:          "जमा करें",
		KeyPastQuizzes:     "पिछले क्विज़",
		KeyNoPastQuizzes:   "अभी तक कोई क्विज़ नहीं।",
		KeyClose:           "बंद करें",
		KeyChatbot:         "चैटबॉट",
		KeyAskAnything:     "कुछ भी पूछें...",
		KeySend:            "भेजें",
		KeyUploadPDF:       "PDF अपलोड करें",
		KeyCommunity:       "समुदाय",
		KeyTopic:           "विषय",
		KeySortBy:          "क्रमबद्ध करें",
		KeySearchQuizzes:   "क्विज़ खोजें",
		KeyNeedsReview:     "जिन क्विज़ की समीक्षा ज़रूरी है",
		KeyLeaderboard:     "शीर्ष मेंटर",
		KeyHighlights:      "समुदाय की झलकियाँ",
		KeyAskForHelp:      "मदद माँगें",
		KeyMentors:         "सुझाए गए मेंटर",
		KeyResources:       "संसाधन",
		KeyHelpMessage:     "आपको किसमें मदद चाहिए?",
		KeySendRequest:     "अनुरोध भेजें",
		KeyAPIBaseURL:      "बैकएंड URL",
		KeyTimeout:         "अनुरोध टाइमआउट (सेकंड)",
		KeyRetries:         "पुनः प्रयास",
		KeySummaryLength:   "डिफ़ॉल्ट सारांश लंबाई",
		KeySpeechLanguage:  "वाणी की भाषा",
		KeyAudioDirectory:  "ऑडियो फ़ोल्डर",
		KeyBrowse:          "ब्राउज़ करें",
		KeySave:            "सहेजें",
		KeyCancel:          "रद्द करें",
		KeySettingsSaved:   "सेटिंग्स सहेजी गईं!",
		KeyAudioSaved:      "ऑडियो सहेजा गया",
		KeyLoading:         "लोड हो रहा है...",
		KeyNoFlashcards:    "अभी कोई फ्लैशकार्ड नहीं। पढ़ाई शुरू करने के लिए एक सेट बनाएँ।",
		KeyAnswered:        "उत्तर दिए",
		KeyScore:           "अंक",
	}
}
