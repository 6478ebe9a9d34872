package db

// SiteStats holds row counts for every content table
type SiteStats struct {
	Todos          int `json:"todos"`
	Posts          int `json:"posts"`
	PublishedPosts int `json:"publishedPosts"`
	Photos         int `json:"photos"`
	WishlistGames  int `json:"wishlistGames"`
	GameRankings   int `json:"gameRankings"`
	Paintings      int `json:"paintings"`
}

// GetSiteStats counts rows across all content tables
func GetSiteStats() (*SiteStats, error) {
	stats := &SiteStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM todos", &stats.Todos},
		{"SELECT COUNT(*) FROM posts", &stats.Posts},
		{"SELECT COUNT(*) FROM posts WHERE published = 1", &stats.PublishedPosts},
		{"SELECT COUNT(*) FROM photos", &stats.Photos},
		{"SELECT COUNT(*) FROM wishlist_games", &stats.WishlistGames},
		{"SELECT COUNT(*) FROM game_rankings", &stats.GameRankings},
		{"SELECT COUNT(*) FROM paintings", &stats.Paintings},
	}

	for _, c := range counts {
		if err := GetDB().QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	return stats, nil
}
