package domain

// Statistics is the aggregate view shown on the administration screen.
type Statistics struct {
	UserCount    int           `json:"userCount"`
	ArticleCount int           `json:"articleCount"`
	MostLiked    []Publication `json:"mostLiked"`
}
