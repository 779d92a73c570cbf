package community

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Page limits
const (
	ReviewThreshold   = 6
	AllTopics         = "All"
	MaxSuggestions    = 3
	MaxResources      = 4
	LeaderboardLength = 4
)

// SortOrder selects how the review list is ordered
type SortOrder string

const (
	SortScoreAsc  SortOrder = "scoreAsc"
	SortScoreDesc SortOrder = "scoreDesc"
	SortDateDesc  SortOrder = "dateDesc"
)

// Label returns the text shown in the sort picker
func (s SortOrder) Label() string {
	switch s {
	case SortScoreDesc:
		return "Highest score first"
	case SortDateDesc:
		return "Newest first"
	default:
		return "Lowest score first"
	}
}

// SortOrders returns the orders in picker order
func SortOrders() []SortOrder {
	return []SortOrder{SortScoreAsc, SortScoreDesc, SortDateDesc}
}

// ParseSortOrder maps a stored value or label to an order. Unknown input
// yields the default.
func ParseSortOrder(s string) SortOrder {
	for _, o := range SortOrders() {
		if s == string(o) || s == o.Label() {
			return o
		}
	}
	return SortScoreAsc
}

// LowScore returns the quizzes scoring below the review threshold, in
// catalog order
func LowScore(quizzes []Quiz) []Quiz {
	return lo.Filter(quizzes, func(q Quiz, _ int) bool {
		return q.Score < ReviewThreshold
	})
}

// Topics returns "All" followed by each distinct topic in first-seen order
func Topics(quizzes []Quiz) []string {
	topics := lo.Uniq(lo.Map(quizzes, func(q Quiz, _ int) string { return q.Topic }))
	return append([]string{AllTopics}, topics...)
}

// Review returns the low-score quizzes of topic ordered by order. Ties keep
// catalog order.
func Review(quizzes []Quiz, topic string, order SortOrder) []Quiz {
	list := LowScore(quizzes)
	if topic != "" && topic != AllTopics {
		list = lo.Filter(list, func(q Quiz, _ int) bool { return q.Topic == topic })
	}

	switch order {
	case SortScoreDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	case SortDateDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	default:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Score < list[j].Score })
	}
	return list
}

// Search returns the quizzes whose title or topic fuzzily matches query
func Search(quizzes []Quiz, query string) []Quiz {
	query = strings.TrimSpace(query)
	if query == "" {
		return quizzes
	}
	return lo.Filter(quizzes, func(q Quiz, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, q.Title) || fuzzy.MatchNormalizedFold(query, q.Topic)
	})
}

// byPoints returns a copy of mentors ordered by points, highest first
func byPoints(mentors []Mentor) []Mentor {
	out := make([]Mentor, len(mentors))
	copy(out, mentors)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out
}

// SuggestMentors returns up to three mentors with expertise in topic,
// highest points first
func SuggestMentors(mentors []Mentor, topic string) []Mentor {
	matching := lo.Filter(mentors, func(m Mentor, _ int) bool {
		return lo.Contains(m.Expertise, topic)
	})
	return lo.Slice(byPoints(matching), 0, MaxSuggestions)
}

// ResourcesFor returns up to four resources for topic
func ResourcesFor(resources []Resource, topic string) []Resource {
	matching := lo.Filter(resources, func(r Resource, _ int) bool { return r.Topic == topic })
	return lo.Slice(matching, 0, MaxResources)
}

// Leaderboard returns the top mentors by points
func Leaderboard(mentors []Mentor) []Mentor {
	return lo.Slice(byPoints(mentors), 0, LeaderboardLength)
}

// MentorByID finds a mentor
func MentorByID(mentors []Mentor, id string) (Mentor, bool) {
	return lo.Find(mentors, func(m Mentor) bool { return m.ID == id })
}

// QuizByID finds a quiz
func QuizByID(quizzes []Quiz, id int) (Quiz, bool) {
	return lo.Find(quizzes, func(q Quiz) bool { return q.ID == id })
}
