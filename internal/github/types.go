package github

// Profile is a GitHub user together with their public repositories.
type Profile struct {
	User         User         `json:"profile"`
	Repositories []Repository `json:"repositories"`
}

// User holds the public profile fields used in resume generation.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	HTMLURL     string `json:"html_url"`
}

// Repository is one public repository with its README text, if any.
type Repository struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	Stars         int    `json:"stars"`
	Forks         int    `json:"forks"`
	HTMLURL       string `json:"html_url"`
	Fork          bool   `json:"fork"`
	ReadmeContent string `json:"readme_content"`
}

// apiUser mirrors the subset of GET /users/{user} we read. Nullable strings
// arrive as JSON null and decode to "".
type apiUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	HTMLURL     string `json:"html_url"`
}

type apiRepo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	HTMLURL         string `json:"html_url"`
	Fork            bool   `json:"fork"`
}

type apiReadme struct {
	DownloadURL string `json:"download_url"`
}

func (u apiUser) toUser() User {
	return User(u)
}

func (r apiRepo) toRepository() Repository {
	return Repository{
		Name:        r.Name,
		Description: r.Description,
		Language:    r.Language,
		Stars:       r.StargazersCount,
		Forks:       r.ForksCount,
		HTMLURL:     r.HTMLURL,
		Fork:        r.Fork,
	}
}
