package github

import (
	"math"
	"sort"
	"strconv"
	"time"
)

// maxRepoSummaries caps the repository list embedded into the prompt.
const maxRepoSummaries = 20

// Summarize aggregates a user profile and repository list into the
// structure fed to the analysis prompt.
//
// Forked repositories with zero stars are excluded from language counts,
// star/fork totals, topics and the repository list, but still count
// toward TotalRepositories and the activity metrics.
func Summarize(user *User, repos []Repository) *ProfileSummary {
	languageCount := map[string]int{}
	topicSet := map[string]struct{}{}

	var totalStars, totalForks int
	summaries := make([]RepoSummary, 0, len(repos))

	for _, repo := range repos {
		if repo.Fork && repo.StargazersCount == 0 {
			continue
		}

		if repo.Language != "" {
			languageCount[repo.Language]++
		}

		totalStars += repo.StargazersCount
		totalForks += repo.ForksCount

		topics := repo.Topics
		if topics == nil {
			topics = []string{}
		}
		for _, topic := range topics {
			topicSet[topic] = struct{}{}
		}

		summaries = append(summaries, RepoSummary{
			Name:        repo.Name,
			Description: stringOr(repo.Description, "No description"),
			Language:    stringOr(repo.Language, "Not specified"),
			Stars:       repo.StargazersCount,
			Forks:       repo.ForksCount,
			Topics:      topics,
			URL:         repo.HTMLURL,
			UpdatedAt:   repo.UpdatedAt,
			Size:        repo.Size,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Stars > summaries[j].Stars
	})
	if len(summaries) > maxRepoSummaries {
		summaries = summaries[:maxRepoSummaries]
	}

	// Sorted for deterministic prompt payloads.
	topics := make([]string, 0, len(topicSet))
	for topic := range topicSet {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	accountAgeDays := (time.Now().Year() - creationYear(user.CreatedAt)) * 365
	reposPerYear := float64(len(repos)) / math.Max(float64(accountAgeDays)/365, 1)

	var avgStars float64
	if len(repos) > 0 {
		avgStars = float64(totalStars) / float64(len(repos))
	}

	return &ProfileSummary{
		User: UserSummary{
			Username:    user.Login,
			Name:        stringOr(user.Name, user.Login),
			Bio:         stringOr(user.Bio, "No bio provided"),
			Location:    user.Location,
			Company:     user.Company,
			Email:       user.Email,
			Blog:        user.Blog,
			Twitter:     user.TwitterUsername,
			Followers:   user.Followers,
			Following:   user.Following,
			PublicRepos: user.PublicRepos,
			CreatedAt:   user.CreatedAt,
			ProfileURL:  user.HTMLURL,
		},
		Stats: Stats{
			TotalRepositories: len(repos),
			LanguagesUsed:     languageCount,
			TotalStarsEarned:  totalStars,
			TotalForks:        totalForks,
			TopicsExplored:    topics,
			ActivityMetrics: ActivityMetrics{
				ReposPerYear:    round2(reposPerYear),
				AvgStarsPerRepo: round2(avgStars),
			},
		},
		Repositories: summaries,
	}
}

// creationYear reads the year out of an ISO-8601 created_at stamp,
// falling back to 2020 when the field is missing or malformed.
func creationYear(createdAt string) int {
	if len(createdAt) >= 4 {
		if year, err := strconv.Atoi(createdAt[:4]); err == nil {
			return year
		}
	}
	return 2020
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
