package github

// User is the GitHub users resource, limited to the fields the profile
// summary consumes. Null JSON fields decode to zero values and are
// defaulted during summarization.
type User struct {
	Login           string `json:"login"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	Location        string `json:"location"`
	Company         string `json:"company"`
	Email           string `json:"email"`
	Blog            string `json:"blog"`
	TwitterUsername string `json:"twitter_username"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	PublicRepos     int    `json:"public_repos"`
	CreatedAt       string `json:"created_at"`
	HTMLURL         string `json:"html_url"`
}

// Repository is the GitHub repos resource.
type Repository struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Language        string   `json:"language"`
	Fork            bool     `json:"fork"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Topics          []string `json:"topics"`
	HTMLURL         string   `json:"html_url"`
	UpdatedAt       string   `json:"updated_at"`
	Size            int      `json:"size"`
}

// UserSummary is the user block of a profile summary.
type UserSummary struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Blog        string `json:"blog"`
	Twitter     string `json:"twitter"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	CreatedAt   string `json:"created_at"`
	ProfileURL  string `json:"profile_url"`
}

// ActivityMetrics holds the derived activity numbers.
type ActivityMetrics struct {
	ReposPerYear    float64 `json:"repos_per_year"`
	AvgStarsPerRepo float64 `json:"avg_stars_per_repo"`
}

// Stats aggregates repository statistics across a profile.
type Stats struct {
	TotalRepositories int             `json:"total_repositories"`
	LanguagesUsed     map[string]int  `json:"languages_used"`
	TotalStarsEarned  int             `json:"total_stars_earned"`
	TotalForks        int             `json:"total_forks"`
	TopicsExplored    []string        `json:"topics_explored"`
	ActivityMetrics   ActivityMetrics `json:"activity_metrics"`
}

// RepoSummary is a single repository entry in a profile summary.
type RepoSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Topics      []string `json:"topics"`
	URL         string   `json:"url"`
	UpdatedAt   string   `json:"updated_at"`
	Size        int      `json:"size"`
}

// ProfileSummary is the aggregated view of a GitHub profile that gets
// embedded into the analysis prompt.
type ProfileSummary struct {
	User         UserSummary   `json:"user"`
	Stats        Stats         `json:"stats"`
	Repositories []RepoSummary `json:"repositories"`
}
