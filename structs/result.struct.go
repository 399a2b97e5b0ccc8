package structs

type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultNotAFile
	ResultProcessingError
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultNotAFile:
		return "not a file"
	case ResultProcessingError:
		return "processing error"
	}
	return "unknown"
}

type Result struct {
	Path   string
	Kind   ResultKind
	Format string
	Width  int
	Height int
	Err    error
}
