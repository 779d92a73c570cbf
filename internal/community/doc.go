// Package community holds the community page catalog (reviewable quizzes,
// mentors and study resources) and the pure derivations the page shows:
// low-score filtering, topic lists, sorting, mentor suggestions and the
// leaderboard.
package community
