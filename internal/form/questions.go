package form

// Kind classifies how a form field is validated.
type Kind string

const (
	KindText           Kind = "text"            // required free text
	KindUIN            Kind = "uin"             // 9-digit university ID number
	KindChoice         Kind = "choice"          // required, one of Options
	KindMultiChoice    Kind = "multi_choice"    // zero or more of Options
	KindOptionalChoice Kind = "optional_choice" // empty or one of Options
	KindOptionalText   Kind = "optional_text"   // free text, may be empty
)

// Question describes a single form field and its validation rule.
type Question struct {
	Field   string   `json:"field"`
	Prompt  string   `json:"prompt"`
	Kind    Kind     `json:"kind"`
	Options []string `json:"options,omitempty"`
}

// questions is the registration question set. The set is fixed at build
// time; the validator is driven entirely by this table.
var questions = []Question{
	{Field: "firstName", Prompt: "First Name", Kind: KindText},
	{Field: "lastName", Prompt: "Last Name", Kind: KindText},
	{Field: "uin", Prompt: "9-Digit UIN", Kind: KindUIN},
	{
		Field: "gender", Prompt: "Gender", Kind: KindChoice,
		Options: []string{"Female", "Male", "Non-binary", "Prefer not to say"},
	},
	{
		Field: "year", Prompt: "Year", Kind: KindChoice,
		Options: []string{"Freshman", "Sophomore", "Junior", "Senior", "Graduate"},
	},
	{
		Field: "availability", Prompt: "Which days will you be attending?", Kind: KindChoice,
		Options: []string{"Friday only", "Saturday only", "Both days"},
	},
	{
		Field: "moreAvailability", Kind: KindOptionalText,
		Prompt: "If you want to add more detailed availability please add it here!",
	},
	{
		Field: "dietaryRestriction", Prompt: "Do you have any dietary restrictions?", Kind: KindChoice,
		Options: []string{"Vegetarian", "Halal", "Vegan", "Gluten Free", "Nut Allergy", "N/A"},
	},
	{
		Field: "shirtSize", Prompt: "What is your unisex t-shirt size?", Kind: KindChoice,
		Options: []string{"XS", "S", "M", "L", "XL", "XXL"},
	},
	{
		Field: "hackathonPlan", Prompt: "Do you have a team?", Kind: KindChoice,
		Options: []string{"Have a team", "Looking for a team", "Going solo"},
	},
	{
		Field: "preWorkshops", Kind: KindMultiChoice,
		Prompt: "Which Pre-Hack Workshops would you find useful to attend? (Select all that apply)",
		Options: []string{
			"Intro to Git and GitHub",
			"Intro to Web Development",
			"Intro to APIs",
			"Hackathon 101",
		},
	},
	{
		Field: "workshops", Kind: KindMultiChoice,
		Prompt: "Which workshop topics would you find useful during the event? (Select all that apply)",
		Options: []string{
			"Databases and Cloud Deployment",
			"Mobile Development",
			"Machine Learning Crash Course",
			"Pitching Your Project",
		},
	},
	{
		Field: "jobType", Kind: KindOptionalChoice,
		Prompt: "Select the type of job you are looking for:",
		Options: []string{"Internship", "Full-time", "Part-time", "Co-op", "None"},
	},
	{Field: "resumeLink", Prompt: "Shareable link to your resume", Kind: KindOptionalText},
	{Field: "otherQuestion", Prompt: "Anything else you want us to know?", Kind: KindOptionalText},
}

// Questions returns the static question set.
func Questions() []Question {
	return questions
}
