package agent

import "regexp"

// This file holds the static keyword and pattern tables the analyzer and
// classifier score against. Pure data; ordering matters wherever a table is
// scanned for a first match, so ordered slices are used instead of maps in
// those places.

// domainOrder fixes the tie-break order for domain detection.
var domainOrder = []string{DomainCoding, DomainResearch, DomainDataScience, DomainGeneral}

// domainTasks maps each domain to its fixed task list. The first entry is
// the default when no task keyword matches.
var domainTasks = map[string][]string{
	DomainCoding:      {"code_generation", "debugging", "code_review", "architecture", "api_design"},
	DomainResearch:    {"literature_review", "paper_writing", "methodology", "explanation"},
	DomainDataScience: {"data_analysis", "ml_model", "data_visualization"},
	DomainGeneral:     {"general_query", "writing_assistance", "brainstorming"},
}

// taskKeywords drives task-type detection within a domain.
var taskKeywords = map[string][]string{
	"code_generation": {"write", "create", "implement", "build", "develop", "code", "function", "class", "program"},
	"debugging":       {"debug", "fix", "error", "bug", "issue", "problem", "not working", "crash", "exception"},
	"code_review":     {"review", "check", "analyze code", "improve", "optimize", "refactor"},
	"architecture":    {"design", "architect", "structure", "system", "scalable", "microservice"},
	"api_design":      {"api", "endpoint", "rest", "graphql", "route", "request", "response"},
	"literature_review": {"literature", "review", "papers", "research", "studies", "academic"},
	"paper_writing":     {"paper", "thesis", "dissertation", "essay", "article", "publication"},
	"methodology":       {"method", "methodology", "approach", "procedure", "study design"},
	"explanation":       {"explain", "what is", "how does", "understand", "concept", "theory"},
	"data_analysis": {"analyze", "data", "statistics", "trends", "patterns", "insights",
		"csv", "clean", "cleaning", "missing", "null", "preprocess", "preprocessing",
		"eda", "exploratory", "leakage", "leak", "correlation", "distribution"},
	"ml_model": {"machine learning", "ml", "model", "predict", "classification", "regression", "neural",
		"lstm", "xgboost", "random forest", "gradient boosting", "lightgbm", "catboost",
		"train", "training", "validation", "hyperparameter", "forecast", "forecasting",
		"deep learning", "tensorflow", "pytorch", "keras", "sklearn", "scikit"},
	"data_visualization": {"visualize", "chart", "graph", "plot", "dashboard", "visualization"},
	"general_query":      {"help", "question", "information", "tell me", "what", "how", "why"},
	"writing_assistance": {"write", "draft", "content", "copy", "blog", "email", "message"},
	"brainstorming":      {"ideas", "brainstorm", "suggest", "creative", "options", "possibilities"},
}

// languageEntry keeps programming-language detection in declaration order:
// the first language with any keyword hit wins.
type languageEntry struct {
	name     string
	keywords []string
}

var languageTable = []languageEntry{
	{"python", []string{"python", "py", "django", "flask", "pandas", "numpy", "pytorch", "tensorflow"}},
	{"javascript", []string{"javascript", "js", "node", "react", "vue", "angular", "express", "npm"}},
	{"typescript", []string{"typescript", "ts", "nest", "deno"}},
	{"java", []string{"java", "spring", "maven", "gradle", "jvm", "kotlin"}},
	{"csharp", []string{"c#", "csharp", ".net", "dotnet", "asp.net", "unity"}},
	{"cpp", []string{"c++", "cpp", "cmake", "qt", "boost"}},
	{"go", []string{"golang", "go ", "gin", "fiber"}},
	{"rust", []string{"rust", "cargo", "tokio"}},
	{"php", []string{"php", "laravel", "symfony", "wordpress"}},
	{"ruby", []string{"ruby", "rails", "sinatra"}},
	{"swift", []string{"swift", "ios", "swiftui", "uikit"}},
	{"sql", []string{"sql", "mysql", "postgresql", "database", "query", "select", "insert"}},
}

const defaultLanguage = "python"

// Domain detection keyword sets.
var (
	codingKeywords = []string{"code", "function", "class", "api", "bug", "error", "debug",
		"implement", "program", "script", "variable", "loop", "array",
		"database", "server", "frontend", "backend", "deploy", "react",
		"python", "javascript", "typescript", "java", "css", "html"}

	researchKeywords = []string{"research", "study", "paper", "thesis", "literature",
		"methodology", "hypothesis", "analysis", "academic",
		"citation", "journal", "publication"}

	// Common data-science terms are worth one point each.
	dataScienceKeywords = []string{"data", "machine learning", "ml", "model", "predict",
		"dataset", "visualization", "statistics", "neural",
		"training", "algorithm", "feature", "regression", "classification",
		"csv", "dataframe", "pandas", "numpy", "sklearn", "scikit",
		"clean", "cleaning", "preprocessing", "preprocess",
		"missing", "null", "nan", "impute", "imputation",
		"leakage", "leak", "overfit", "overfitting", "underfit",
		"train", "test", "validation", "split", "cross-validation",
		"forecast", "forecasting", "time series", "arima",
		"eda", "exploratory", "correlation", "distribution"}

	// High-specificity ML terms are worth three points each.
	mlSpecificKeywords = []string{"lstm", "xgboost", "random forest", "gradient boosting",
		"lightgbm", "catboost", "tensorflow", "pytorch", "keras",
		"transformer", "bert", "gpt", "cnn", "rnn", "autoencoder",
		"hyperparameter", "epoch", "batch size", "learning rate",
		"confusion matrix", "roc", "auc", "precision", "recall", "f1"}
)

// codeSyntaxRegex grants the coding domain a flat bonus when source-looking
// text is present.
var codeSyntaxRegex = regexp.MustCompile("```|def |class |function |const |let |var |import |from ")

const codeSyntaxBonus = 3

var complexityIndicators = []string{"complex", "advanced", "sophisticated", "enterprise",
	"scalable", "distributed", "microservice", "architecture",
	"optimize", "performance", "security"}

// stopWords are dropped before key-topic frequency counting.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "must": {}, "shall": {},
	"can": {}, "need": {}, "dare": {}, "ought": {}, "used": {}, "to": {}, "of": {}, "in": {},
	"for": {}, "on": {}, "with": {}, "at": {}, "by": {}, "from": {}, "as": {}, "into": {}, "like": {},
	"through": {}, "after": {}, "over": {}, "between": {}, "out": {}, "against": {},
	"during": {}, "without": {}, "before": {}, "under": {}, "around": {}, "among": {},
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {}, "you": {}, "your": {},
	"he": {}, "him": {}, "his": {}, "she": {}, "her": {}, "it": {}, "its": {}, "they": {}, "them": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"am": {}, "and": {}, "but": {}, "if": {}, "or": {}, "because": {}, "until": {}, "while": {},
	"how": {}, "help": {}, "want": {}, "please": {}, "create": {}, "make": {}, "write": {},
}

var topicWordRegex = regexp.MustCompile(`\b[a-z]+\b`)

// --- Intent classification tables ---

// greetings match either the whole message or its prefix.
var greetings = []string{"hello", "hi", "hey", "bonjour", "salut", "coucou", "yo", "sup",
	"good morning", "good evening", "good afternoon", "what's up",
	"how are you", "comment ça va", "ça va", "how's it going"}

var casualPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(thanks|thank you|merci)`),
	regexp.MustCompile(`^(okay|ok|alright|sure|yes|no|yep|nope)`),
	regexp.MustCompile(`^(nice|cool|great|awesome|amazing)`),
	regexp.MustCompile(`(how's your|what's your) (day|name)`),
	regexp.MustCompile(`^(lol|haha)`),
	regexp.MustCompile(`(bye|goodbye|see you|later|à bientôt)`),
	regexp.MustCompile(`^just (saying|asking|wondering|curious)`),
	regexp.MustCompile(`^i'?m (doing|feeling|good|fine|great|okay|well)`),
	regexp.MustCompile(`(can you|do you) speak`),
	regexp.MustCompile(`(what|which) language`),
	regexp.MustCompile(`^(that's|thats) (cool|nice|great|interesting|funny)`),
	regexp.MustCompile(`^(really|wow|oh|hm+|ah)`),
	regexp.MustCompile(`tell me (about yourself|a joke|something)`),
	regexp.MustCompile(`^(yeah|yea|yup|nah)`),
	regexp.MustCompile(`what do you (like|think|prefer)`),
	regexp.MustCompile(`^(hows|how is) (it|life|everything)`),
}

var lifePatterns = []*regexp.Regexp{
	regexp.MustCompile(`what is (the meaning of |)life`),
	regexp.MustCompile(`why (do|are) (we|humans)`),
	regexp.MustCompile(`what (do you think|is your opinion)`),
	regexp.MustCompile(`how (do i|should i|can i) (deal with|handle|cope|live)`),
	regexp.MustCompile(`what('s| is) (love|happiness|success|friendship)`),
	regexp.MustCompile(`(tell me|talk to me) about (yourself|you|life)`),
	regexp.MustCompile(`who are you`),
	regexp.MustCompile(`are you (real|alive|conscious|sentient)`),
	regexp.MustCompile(`what (can you|do you) (do|think|feel)`),
	regexp.MustCompile(`(advice|help me|guide me) (about|with|on) (life|career|relationship)`),
	regexp.MustCompile(`i (feel|am feeling|'m feeling) (sad|happy|confused|lost|anxious)`),
	regexp.MustCompile(`do you (believe|think)`),
}

// promptKeywords are strong signals that the user wants a prompt built.
var promptKeywords = []string{"prompt", "optimize", "generate prompt", "create prompt",
	"write a prompt", "better prompt", "ai prompt",
	"transform this", "enhance this", "refine prompt"}

// techKeywords signal a technical request that benefits from optimization.
var techKeywords = []string{"code", "function", "api", "database", "implement",
	"algorithm", "script", "program", "debug", "error",
	"python", "javascript", "react", "sql"}

// taskVerbKeywords upgrade a hybrid response into a full optimization.
var taskVerbKeywords = []string{"create", "write", "make", "build", "help me"}

// --- Guided flow tables ---

// guidedQuestions is the fixed 4-question interview script per domain. The
// ai_builder script has no analyzer domain of its own; it is reachable only
// by explicit settings.domain selection.
var guidedQuestions = map[string][]string{
	DomainCoding: {
		"What programming language or framework are you working with?",
		"What specific task do you need help with? (e.g., building a feature, fixing a bug, refactoring)",
		"Are there any specific requirements or constraints I should know about?",
		"What format would you like the output in? (e.g., code with comments, step-by-step guide)",
	},
	DomainDataScience: {
		"What's the main goal of your analysis? (e.g., prediction, classification, clustering)",
		"Can you tell me about your dataset? (size, type of data, key features)",
		"Are there any specific algorithms or techniques you'd like to use?",
		"What output do you need? (e.g., Python code, insights report, visualization)",
	},
	"ai_builder": {
		"What type of AI system are you building? (e.g., chatbot, agent, RAG pipeline)",
		"What's the main use case or problem you're solving?",
		"Which AI models or APIs are you planning to use?",
		"Any specific requirements like latency, cost, or accuracy constraints?",
	},
	DomainResearch: {
		"What's your field of study and academic level?",
		"What type of work are you doing? (e.g., literature review, methodology, analysis)",
		"What's your specific research question or topic?",
		"Any particular requirements from your institution or supervisor?",
	},
}

// expertRoles labels the consultant persona per guided domain.
var expertRoles = map[string]string{
	DomainCoding:      "Senior Software Architect & Coding Expert",
	DomainDataScience: "Lead Data Scientist & ML Expert",
	"ai_builder":      "AI/ML Solutions Architect",
	DomainResearch:    "Academic Research Advisor",
}

// generateTriggers end a guided session. Plain substring matching, so
// unrelated text containing e.g. "ready" can trip it; that is a known
// heuristic limitation.
var generateTriggers = []string{
	"generate", "create the prompt", "make the prompt", "build the prompt",
	"create it", "generate it", "make it", "build it",
	"generate prompt", "create prompt", "ready", "go ahead",
	"yes generate", "ok generate", "please generate",
}
