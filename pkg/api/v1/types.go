package v1

type RepoMode string

const (
	RepoModeURL  RepoMode = "url"
	RepoModeFile RepoMode = "file"
)

// Config describes a single dependency query.
type Config struct {
	PackageName     string   `json:"package_name"`
	RepoURLOrPath   string   `json:"repo_url_or_path"`
	RepoMode        RepoMode `json:"repo_mode"`
	GraphFileName   string   `json:"graph_file_name"`
	ASCIITreeMode   bool     `json:"ascii_tree_mode"`
	FilterSubstring string   `json:"filter_substring"`
}
