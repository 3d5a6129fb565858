package cards

// promptCards are the fill-in-the-blank question cards shown to the whole session
var promptCards = []Card{
	"The sprint failed because of ____.",
	"Our new definition of done now includes ____.",
	"The retro's only action item: more ____.",
	"Velocity doubled once we eliminated ____.",
	"The stakeholders were shocked to discover ____ on the roadmap.",
	"Step 1: ____. Step 2: ??? Step 3: ship it.",
	"The standup ran forty minutes because of ____.",
	"Nothing says agile transformation like ____.",
	"QA found ____ in production again.",
	"The architecture diagram is just a picture of ____.",
	"Our OKRs this quarter: reduce ____ by 20%.",
	"The incident postmortem blamed ____.",
	"The product owner re-prioritized everything below ____.",
	"We pivoted from blockchain to ____.",
	"The estimate was three points, but then came ____.",
	"Pair programming is 10% typing and 90% ____.",
	"The only thing blocking the release is ____.",
	"Leadership replaced our bonuses with ____.",
	"The design system's newest component: ____.",
	"Scrum, but with ____.",
	"The demo crashed the moment we showed ____.",
	"Technical debt is really just ____.",
	"The onboarding doc says day one is all about ____.",
	"Our North Star metric turned out to be ____.",
	"The all-hands ended early because of ____.",
}

// answerCards form the draw pile that participant hands are dealt from
var answerCards = []Card{
	"a 200-slide deck about synergy",
	"renaming the master branch again",
	"an intern with prod access",
	"mandatory fun",
	"a Jira ticket with no description",
	"estimating in dog years",
	"the consultant who invented SAFe",
	"merging on a Friday at 4:59pm",
	"a daily standup that is actually a seance",
	"the coffee machine's microservice",
	"blaming the previous team",
	"an AI-generated apology",
	"unlimited PTO that nobody takes",
	"a whiteboard full of circles and arrows",
	"rewriting it in Rust",
	"the one engineer who knows how deploys work",
	"a hotfix for the hotfix",
	"pretending to take notes",
	"moving the deadline up as a motivational tool",
	"a burndown chart that only goes up",
	"three re-orgs in one quarter",
	"calling the bug a feature flag",
	"an emotional support spreadsheet",
	"the QA environment nobody can log in to",
	"a standing desk used exclusively for sitting",
	"silently leaving the Zoom call",
	"the legacy system held together with cron jobs",
	"a motivational poster about failing fast",
	"one more quick sync",
	"the roadmap, printed and laminated",
	"a Slack channel with 400 unread messages",
	"story points converted directly to hours",
	"the office plant that outlasted four managers",
	"demoing on localhost",
	"an NDA for the team lunch",
	"the phrase \"it works on my machine\"",
	"a gantt chart disguised as a kanban board",
	"volunteering someone else for on-call",
	"the 10x engineer's untested commit",
	"a retrospective about the retrospective",
	"monetizing the error page",
	"an offsite about reducing meetings",
	"the acceptance criteria nobody accepted",
	"pivoting to a pivot",
	"dark mode as the entire Q3 deliverable",
	"a certificate in certificate management",
	"the vendor who ghosted us",
	"free pizza as a compensation strategy",
}

// Prompts returns a copy of the full prompt card set
func Prompts() []Card {
	return append([]Card{}, promptCards...)
}

// Answers returns a copy of the full answer card set
func Answers() []Card {
	return append([]Card{}, answerCards...)
}
