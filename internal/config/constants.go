package config

// Application settings.
const (
	AppName        = "lifetrack"
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = "10s"
	DefaultTheme   = "default"
	LogFileName    = "lifetrack.log"
)

// Input limits.
const (
	MaxTaskNameLength    = 100
	MaxDescriptionLength = 200
)

// Life task defaults.
const DefaultTargetValue = 100

// Slider steps for today's progress.
const (
	SliderStep    = 1
	SliderBigStep = 10
)

// Categories is the fixed set a life task may belong to.
var Categories = []string{"General", "Health", "Learning", "Work", "Personal", "Finance"}
