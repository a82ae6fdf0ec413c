package taxonomy

// defaultEntries is the built-in skill taxonomy used when no external
// skill-config source is provided. Canonical names map to synonym strings;
// lookups are case-insensitive.
var defaultEntries = map[string][]string{
	"python":                  {"python3", "py"},
	"javascript":              {"js", "ecmascript"},
	"typescript":              {"ts"},
	"java":                    {},
	"go":                      {"golang"},
	"c++":                     {"cpp"},
	"sql":                     {"structured query language"},
	"nosql":                   {"no sql"},
	"postgresql":              {"postgres"},
	"mysql":                   {},
	"mongodb":                 {"mongo"},
	"redis":                   {},
	"react":                   {"reactjs", "react.js"},
	"angular":                 {"angularjs"},
	"vue":                     {"vuejs", "vue.js"},
	"node.js":                 {"node", "nodejs"},
	"django":                  {},
	"flask":                   {},
	"spring":                  {"spring boot"},
	"restful api":             {"rest api", "rest", "restful"},
	"graphql":                 {},
	"aws":                     {"amazon web services"},
	"azure":                   {"microsoft azure"},
	"gcp":                     {"google cloud", "google cloud platform"},
	"docker":                  {},
	"kubernetes":              {"k8s"},
	"terraform":               {},
	"ci/cd":                   {"cicd", "continuous integration", "continuous delivery"},
	"git":                     {"github", "gitlab"},
	"linux":                   {"unix"},
	"machine learning":        {"ml"},
	"deep learning":           {"dl"},
	"artificial intelligence": {"ai"},
	"data analysis":           {"data analytics"},
	"data science":            {"data scientist"},
	"business intelligence":   {"bi"},
	"tensorflow":              {},
	"pytorch":                 {},
	"scikit-learn":            {"sklearn"},
	"pandas":                  {},
	"numpy":                   {},
	"spark":                   {"apache spark", "pyspark"},
	"kafka":                   {"apache kafka"},
	"html":                    {"html5"},
	"css":                     {"css3"},
	"frontend":                {"front end", "front-end"},
	"backend":                 {"back end", "back-end"},
	"full stack":              {"fullstack", "full stack developer"},
	"devops":                  {},
	"agile":                   {"scrum", "kanban"},
	"communication":           {},
	"leadership":              {"team lead", "team leadership"},
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return New(defaultEntries)
}
