package detect

// Method identifies which detection strategy produced a result.
type Method string

const (
	MethodTOC   Method = "toc"
	MethodRegex Method = "regex"
	MethodNone  Method = "none"
)

// NumberFormat distinguishes roman from arabic chapter identifiers in a TOC.
type NumberFormat string

const (
	FormatRoman   NumberFormat = "roman"
	FormatNumeric NumberFormat = "numeric"
)

// Record is the working chapter record, enriched in stages as it moves
// through the pipeline: the TOC parser fills the identifier and title, the
// locator adds LineStart, the extractor attaches Content.
type Record struct {
	Number    int
	RomanForm string
	Title     string
	Format    NumberFormat
	LineStart int
	Content   string
}

// Chapter is the final output unit.
type Chapter struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Result carries the detected chapters together with the method that
// produced them. Chapters from different methods are never mixed within a
// single result.
type Result struct {
	Chapters []Chapter
	Method   Method
}
