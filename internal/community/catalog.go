package community

import (
	"time"

	"github.com/studybuddy/studybuddy/internal/model"
)

// Quiz is a community quiz result that may need review
type Quiz struct {
	ID    int
	Title string
	Topic string
	Date  time.Time
	Score int
}

// ScoreLabel returns the score out of the quiz length
func (q Quiz) ScoreLabel() string {
	return model.PastQuiz{CorrectCount: &q.Score}.ScoreLabel()
}

// DateLabel returns the date as "Nov 1, 2025"
func (q Quiz) DateLabel() string {
	return model.FormatShortDate(q.Date)
}

// Mentor is a peer who can be asked for help
type Mentor struct {
	ID        string
	Name      string
	College   string
	Expertise []string
	Points    int
	Bio       string
	Slots     string
}

// Resource is a study link for a topic
type Resource struct {
	ID    string
	Topic string
	Title string
	Kind  string
	Href  string
}

// Catalog is the data set a community page works on
type Catalog struct {
	Quizzes    []Quiz
	Mentors    []Mentor
	Resources  []Resource
	Highlights []string
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DefaultCatalog returns the built-in community data
func DefaultCatalog() Catalog {
	return Catalog{
		Quizzes: []Quiz{
			{ID: 101, Title: "AWS IAM Basics", Topic: "Cloud Security", Date: day("2025-11-01"), Score: 4},
			{ID: 102, Title: "VPC & Subnets", Topic: "Networking", Date: day("2025-11-01"), Score: 7},
			{ID: 103, Title: "RDBMS Joins", Topic: "Databases", Date: day("2025-11-02"), Score: 5},
			{ID: 104, Title: "K-Means & PCA", Topic: "Machine Learning", Date: day("2025-11-02"), Score: 3},
			{ID: 105, Title: "OSI vs TCP/IP", Topic: "Networking", Date: day("2025-11-01"), Score: 6},
			{ID: 106, Title: "REST vs gRPC", Topic: "APIs", Date: day("2025-11-02"), Score: 8},
			{ID: 107, Title: "S3 & Glacier", Topic: "Cloud Storage", Date: day("2025-11-01"), Score: 2},
			{ID: 108, Title: "CNN vs RNN", Topic: "Machine Learning", Date: day("2025-11-02"), Score: 9},
			{ID: 109, Title: "ACID & CAP", Topic: "Databases", Date: day("2025-11-01"), Score: 5},
			{ID: 110, Title: "JWT & OAuth2", Topic: "Auth", Date: day("2025-11-02"), Score: 4},
		},
		Mentors: []Mentor{
			{
				ID: "m1", Name: "Aisha Verma", College: "RIT",
				Expertise: []string{"Cloud Security", "Auth", "APIs"},
				Points:    1240, Bio: "Cloud & AppSec TA · loves simplifying IAM.", Slots: "Today 7-9 PM",
			},
			{
				ID: "m2", Name: "Daniel Kim", College: "MIT",
				Expertise: []string{"Machine Learning", "Databases"},
				Points:    990, Bio: "ML study group lead · notebooks & math help.", Slots: "Tomorrow 5-7 PM",
			},
			{
				ID: "m3", Name: "Priya Nair", College: "Stanford",
				Expertise: []string{"Networking", "Cloud Storage"},
				Points:    860, Bio: "VPC/VPN wizard · diagrams for the win.", Slots: "Sat 2-4 PM",
			},
			{
				ID: "m4", Name: "Leo Garcia", College: "UWash",
				Expertise: []string{"Databases", "Auth"},
				Points:    670, Bio: "SQL surgeon · ERDs & query tuning.", Slots: "Sun 11-1 PM",
			},
		},
		Resources: []Resource{
			{ID: "r1", Topic: "Cloud Security", Title: "AWS IAM Zero-to-Hero", Kind: "Guide", Href: "https://docs.aws.amazon.com/IAM/latest/UserGuide/introduction.html"},
			{ID: "r2", Topic: "Networking", Title: "VPC Cheatsheet", Kind: "Cheatsheet", Href: "https://docs.aws.amazon.com/vpc/latest/userguide/what-is-amazon-vpc.html"},
			{ID: "r3", Topic: "Machine Learning", Title: "Clustering vs Dimensionality Reduction", Kind: "Article", Href: "https://www3.cs.stonybrook.edu/~has/CSE545/Slides-2016/8.11_6.pdf"},
			{ID: "r4", Topic: "Databases", Title: "SQL Join Visualizer", Kind: "Tool", Href: "https://sql-joins.leopard.in.ua/"},
			{ID: "r5", Topic: "Auth", Title: "JWT vs OAuth2 Primer", Kind: "Video", Href: "https://www.youtube.com/watch?v=996OiexHze0"},
			{ID: "r6", Topic: "Cloud Storage", Title: "S3 Tiers Demystified", Kind: "Guide", Href: "https://aws.amazon.com/s3/storage-classes/"},
		},
		Highlights: []string{
			"💬 24h Response: most mentors reply within a day.",
			"🗓️ Study Rooms: Networking · Sat 5PM · Rm 2B (8 joined)",
			"🏆 Top Helper: Aisha (+120 pts this week)",
			"📚 New resource packs for Cloud Security & Databases.",
		},
	}
}
