package skills

// Word lists shared by the normalizer and the validator. Entries are lowercase.

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// marketingPhrases mark recruitment copy rather than a skill.
var marketingPhrases = []string{
	"join our", "join the", "world-class", "world class", "cutting-edge", "cutting edge",
	"state-of-the-art", "state of the art", "fast-paced", "fast paced", "dynamic team",
	"exciting opportunity", "competitive salary", "competitive pay", "equal opportunity",
	"apply now", "apply today", "we offer", "benefits package", "career growth",
	"best-in-class", "best in class", "industry-leading", "industry leading", "award-winning",
	"self-starter", "team player", "passionate about", "ideal candidate", "make a difference",
	"growing company", "great place to work", "rewarding career", "next-generation",
	"game-changing", "mission-driven",
}

// adjectives are intensifiers and qualifiers stripped before lookup. Words
// that start real terms ("critical", "dynamic", "active", "complex",
// "high", "creative") are deliberately absent.
var adjectives = []string{
	"excellent", "strong", "advanced", "proven", "highly", "solid", "good", "great",
	"exceptional", "outstanding", "superior", "superb", "exemplary", "demonstrated",
	"effective", "efficient", "proficient", "extensive", "deep", "thorough",
	"comprehensive", "basic", "general", "relevant", "related", "applicable",
	"appropriate", "necessary", "required", "preferred", "desired", "minimum",
	"sound", "keen", "sharp", "robust", "expert", "hands-on", "in-depth",
	"senior", "junior", "successful", "significant", "substantial", "considerable",
	"ample", "adequate", "sufficient", "previous", "prior", "current", "recent",
	"practical", "very", "extremely", "exceptionally", "particularly", "especially",
	"really", "truly", "incredibly", "fully", "well-developed", "well-rounded",
	"self-motivated", "motivated", "dedicated", "reliable", "dependable", "energetic",
	"enthusiastic", "passionate", "eager", "willing", "capable", "competent",
	"skilled", "experienced", "qualified", "knowledgeable", "seasoned",
	"accomplished", "talented", "innovative", "clear", "concise", "superlative",
	"fundamental", "essential", "important", "modern", "latest", "multiple",
	"various", "diverse", "demonstrable", "impeccable", "meticulous",
}

// wordForms maps adjective forms to the noun used by the reference terms.
var wordForms = map[string]string{
	"operational":     "operations",
	"analytical":      "analysis",
	"organizational":  "organization",
	"managerial":      "management",
	"mathematical":    "mathematics",
	"statistical":     "statistics",
	"communicative":   "communication",
	"collaborative":   "collaboration",
	"logistical":      "logistics",
	"administrative":  "administration",
	"supervisory":     "supervision",
	"problem-solving": "problem solving",
	"decision-making": "decision making",
	"time-management": "time management",
}

// keptForms are adjectives that read naturally in skill names and are left alone.
var keptForms = set(
	"technical", "professional", "mechanical", "electrical", "chemical", "physical",
	"environmental", "industrial", "clinical", "financial", "critical", "commercial",
)

// incompleteSkills are single words completed to their conventional phrase.
var incompleteSkills = map[string]string{
	"written":   "written communication",
	"verbal":    "verbal communication",
	"oral":      "oral communication",
	"problem":   "problem solving",
	"time":      "time management",
	"customer":  "customer service",
	"attention": "attention to detail",
	"critical":  "critical thinking",
	"decision":  "decision making",
	"project":   "project management",
}

// actionVerbs open task descriptions, not skills.
var actionVerbs = set(
	"delegate", "organize", "maintain", "monitor", "ensure", "perform", "provide",
	"support", "assist", "coordinate", "develop", "conduct", "prepare", "review",
	"oversee", "implement", "identify", "communicate", "collaborate", "participate",
	"respond", "complete", "follow", "operate", "create", "guide", "establish",
)

// keepPlural are plural terms the singularizer leaves untouched.
var keepPlural = set(
	"operations", "systems", "analytics", "logistics", "mathematics", "statistics", "economics",
)

// tooGeneric are complete strings that carry no skill on their own.
var tooGeneric = set(
	"experience", "experiences", "skills", "skill", "knowledge", "ability", "abilities",
	"proficiency", "expertise", "background", "understanding", "familiarity",
	"competency", "competencies", "capability", "capabilities", "qualifications",
	"requirements", "responsibilities", "duties", "tasks",
)

// fillerWords never count as a meaningful token.
var fillerWords = set(
	"and", "or", "the", "a", "an", "of", "to", "in", "for", "with", "on", "at", "by",
	"as", "is", "be", "from", "into", "all", "any", "some", "other", "etc", "its",
	"are", "was", "were", "has", "have", "had", "been", "per", "via", "within",
)

// vagueSingleWords are rejected when they are the only meaningful token.
var vagueSingleWords = set(
	"thinking", "just", "work", "drive", "things", "stuff", "various", "others",
	"good", "great", "able", "ready", "willing", "best", "needs", "level", "basis",
	"areas", "area", "field", "general", "overall", "strong",
)

// vagueNouns are further single words with no skill content.
var vagueNouns = set(
	"english", "spanish", "french", "german", "chinese", "mandarin", "portuguese",
	"language", "languages", "college", "university", "attitude", "system",
	"systems", "peers", "team", "teams", "environment", "culture", "people",
	"clients", "customers", "company", "role", "position", "candidate", "office",
	"personality", "energy", "passion", "motivation", "integrity", "honesty",
	"flexibility", "availability", "schedule", "travel", "weekends", "shifts",
)

// requirementArtifacts are phrases lifted from benefits and requirement blocks.
var requirementArtifacts = []string{
	"work-life balance", "work life balance", "stakeholders", "stakeholder",
	"background check", "drug test", "drug screen", "driver's license", "drivers license",
	"physical demands", "pay rate", "per hour", "sign-on bonus", "paid time off",
	"health insurance", "dental", "retirement plan", "reports to", "reporting to",
	"on-call", "overtime", "relocation", "visa", "salary",
}

// letterDashWords are real words that start with a single letter and a dash.
var letterDashWords = []string{"x-ray", "e-commerce", "e-learning", "e-mail"}

// thinkingAllowed are the adjectives that form accepted "... thinking" skills.
var thinkingAllowed = set("critical", "analytical", "strategic", "creative", "logical", "systems")

// quantifiers open two-word phrases that are never skills.
var quantifiers = set("just", "only", "some")

// validatorBlacklist are section headers, generic words and posting
// artifacts. Multi-word entries also match as substrings.
var validatorBlacklist = []string{
	"key responsibilities", "responsibilities", "requirements", "qualifications",
	"minimum qualifications", "preferred qualifications", "job description",
	"job summary", "about us", "about the role", "what you will do", "who you are",
	"basic compensation", "compensation", "benefits", "business career",
	"equal opportunity", "key", "basic", "essential", "excellent", "strong",
	"preferred", "required", "other duties", "full-time", "full time", "part-time",
	"part time", "remote", "hybrid", "on-site", "onsite", "contract", "temporary",
	"salary", "location", "apply", "summary", "overview", "duties", "skills",
	"experience", "knowledge", "abilities", "education",
}

// gerundSkills are "-ing" words that name a skill rather than a task.
var gerundSkills = set(
	"welding", "programming", "engineering", "machining", "drilling", "plumbing",
	"wiring", "troubleshooting", "scaffolding", "rigging", "surveying", "accounting",
	"marketing", "budgeting", "forecasting", "scheduling", "estimating", "logging",
	"cementing", "fracturing", "blasting", "painting", "coating", "testing",
	"modeling", "modelling", "mapping", "drafting", "networking", "computing",
	"consulting", "auditing", "training", "mentoring", "writing", "reading",
	"speaking", "listening", "monitoring", "instructing", "repairing", "building",
	"pipefitting", "boilermaking", "millwrighting", "sandblasting", "trenching",
	"grading", "permitting", "commissioning", "planning", "manufacturing",
	"processing", "fabricating", "landscaping", "roofing", "framing", "flooring",
	"bookkeeping", "nursing", "coaching", "contracting", "purchasing", "pigging",
	"geosteering", "waterflooding", "multitasking", "refining", "mining",
)

// imperativeVerbs open instructions addressed to the candidate.
var imperativeVerbs = set(
	"ensure", "maintain", "perform", "provide", "support", "assist", "coordinate",
	"develop", "conduct", "prepare", "review", "oversee", "implement", "identify",
	"manage", "lead", "delegate", "organize", "monitor", "complete", "follow",
	"respond", "create", "establish", "communicate", "participate", "operate",
)

// vagueAbstractStarts begin abstract-quality phrases.
var vagueAbstractStarts = set("thoroughness", "accuracy", "precision", "consistency", "reliability")

// genericStarts are opening words of recruitment copy and questions.
var genericStarts = set(
	"join", "partner", "explore", "discover", "apply", "become", "grow", "shape",
	"bring", "enjoy", "contribute", "thrive", "make", "let", "come", "get", "want",
	"looking", "seeking", "hiring", "about", "what", "why", "how", "when", "where",
	"our", "your", "we", "you", "must", "should", "will", "please", "ability",
	"able", "responsible", "duties", "including", "such", "other", "various",
)

// validatorFillers are the words counted in the filler ratio.
var validatorFillers = set(
	"and", "or", "the", "a", "an", "of", "to", "in", "for", "with", "on", "at",
	"by", "as", "is", "be", "from", "into", "all", "any", "some", "other", "etc",
)

// sentenceIndicators appear in sentences addressed to the reader.
var sentenceIndicators = set("you", "your", "we", "our", "must", "should", "will")
