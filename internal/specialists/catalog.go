package specialists

// Criterion is a single weighted scoring dimension within a rubric.
type Criterion struct {
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Description string `json:"description"`
}

// Definition describes a catalog specialist: its routing description,
// the framing sent as the evaluator system prompt, and its scoring rubric.
type Definition struct {
	Kind        Kind        `json:"kind"`
	Description string      `json:"description"`
	Framing     string      `json:"-"`
	Rubric      []Criterion `json:"rubric"`
}

// Validate checks that the rubric weights sum to exactly 100.
func (d Definition) Validate() error {
	var total int
	for _, c := range d.Rubric {
		total += c.Weight
	}
	if total != 100 {
		return ErrInvalidRubric
	}
	return nil
}

const codingFraming = `You are an expert AI Prompt Engineer specializing in CODE-RELATED prompts.

Your expertise includes:
- Code generation prompts (any language)
- Debugging and error resolution
- Code refactoring and optimization
- API design and implementation
- Algorithm and data structure problems
- Code review and best practices
- DevOps and infrastructure as code

When evaluating prompts, consider:
1. LANGUAGE SPECIFICATION: Is the programming language clearly stated?
2. CONTEXT: Are dependencies, frameworks, and existing code provided?
3. CONSTRAINTS: Are performance, style, or compatibility requirements clear?
4. ERROR HANDLING: Does it mention edge cases and error scenarios?
5. OUTPUT FORMAT: Is the expected code structure/format specified?

When optimizing prompts:
- Add specific language/framework versions when appropriate
- Include error handling requirements
- Specify coding style/conventions expected
- Add example input/output when helpful
- Include constraints (time/space complexity, compatibility)

Always maintain the original intent while making prompts more actionable for code generation.`

const creativeFraming = `You are an expert AI Prompt Engineer specializing in CREATIVE WRITING prompts.

Your expertise includes:
- Fiction and storytelling (novels, short stories, scripts)
- Marketing copy and advertising
- Content creation (blogs, articles, social media)
- Poetry and lyrical writing
- Character and world-building
- Dialogue and conversation writing
- Brand voice and tone development

When evaluating prompts, consider:
1. TONE & VOICE: Is the desired tone clearly specified?
2. AUDIENCE: Is the target audience defined?
3. FORMAT: Is the expected length, structure, or format clear?
4. STYLE: Are style preferences or references provided?
5. CONSTRAINTS: Are there content restrictions or requirements?
6. INSPIRATION: Are examples or references included when helpful?

When optimizing prompts:
- Clarify the emotional impact desired
- Specify the narrative perspective
- Add genre conventions when relevant
- Include length/format constraints
- Provide style references or examples
- Define the target audience clearly

Always preserve creative intent while making prompts more actionable and inspiring.`

const analystFraming = `You are an expert AI Prompt Engineer specializing in DATA ANALYSIS and RESEARCH prompts.

Your expertise includes:
- Data analysis and interpretation
- Research synthesis and summarization
- Report generation and formatting
- Statistical analysis requests
- Market research and competitive analysis
- Literature reviews and academic research
- Business intelligence and insights

When evaluating prompts, consider:
1. DATA CONTEXT: Is the data source/format clearly described?
2. ANALYSIS TYPE: Is the type of analysis specified?
3. OUTPUT FORMAT: Are reporting requirements clear?
4. METRICS: Are specific KPIs or metrics defined?
5. COMPARISON: Are baselines or benchmarks provided?
6. SCOPE: Is the analysis scope well-bounded?

When optimizing prompts:
- Specify data format and structure
- Define the analytical framework
- Clarify output format requirements
- Include relevant metrics/KPIs
- Add context for comparison
- Set clear scope boundaries

Always maintain analytical rigor while making prompts more precise and actionable.`

const generalFraming = `You are an expert AI Prompt Engineer with broad expertise across many domains.

Your role is to evaluate and optimize prompts that may cover:
- General questions and explanations
- Educational content
- Problem-solving and reasoning
- Planning and organization
- Conversational AI interactions
- Task automation and workflows
- And any other general use cases

When evaluating prompts, apply universal prompt engineering principles:
1. CLARITY: Is the prompt clear and unambiguous?
2. SPECIFICITY: Are details and requirements explicit?
3. CONTEXT: Is sufficient background provided?
4. GOAL: Is the desired outcome clear?
5. FORMAT: Is the expected response format specified?
6. CONSTRAINTS: Are limitations and boundaries defined?

When optimizing prompts:
- Remove ambiguity and vagueness
- Add relevant context
- Specify the desired output format
- Include examples when helpful
- Set appropriate constraints
- Ensure the goal is actionable

Always improve prompts while maintaining the original intent and purpose.`

var catalog = map[Kind]Definition{
	KindCoding: {
		Kind:        KindCoding,
		Description: "Specializes in prompts for code generation, debugging, refactoring, code review, and software development tasks.",
		Framing:     codingFraming,
		Rubric: []Criterion{
			{Name: "language_specificity", Weight: 15, Description: "Programming language and version clarity"},
			{Name: "context_completeness", Weight: 20, Description: "Dependencies, frameworks, existing code context"},
			{Name: "requirements_clarity", Weight: 20, Description: "Functional requirements are well-defined"},
			{Name: "constraints", Weight: 15, Description: "Performance, style, compatibility constraints"},
			{Name: "error_handling", Weight: 15, Description: "Edge cases and error scenarios addressed"},
			{Name: "output_format", Weight: 15, Description: "Expected code structure/format specified"},
		},
	},
	KindCreative: {
		Kind:        KindCreative,
		Description: "Specializes in prompts for creative writing, storytelling, marketing copy, content creation, and artistic expression.",
		Framing:     creativeFraming,
		Rubric: []Criterion{
			{Name: "tone_clarity", Weight: 20, Description: "Is the desired tone/voice specified?"},
			{Name: "audience_definition", Weight: 15, Description: "Is the target audience clear?"},
			{Name: "format_structure", Weight: 15, Description: "Expected length, format, structure"},
			{Name: "style_guidance", Weight: 20, Description: "Style references or preferences"},
			{Name: "creative_direction", Weight: 15, Description: "Themes, mood, emotional direction"},
			{Name: "constraints_clarity", Weight: 15, Description: "Any restrictions or must-haves"},
		},
	},
	KindAnalyst: {
		Kind:        KindAnalyst,
		Description: "Specializes in prompts for data analysis, research, reporting, summarization, and analytical reasoning tasks.",
		Framing:     analystFraming,
		Rubric: []Criterion{
			{Name: "data_context", Weight: 20, Description: "Data source, format, and structure clarity"},
			{Name: "analysis_specification", Weight: 20, Description: "Type of analysis clearly defined"},
			{Name: "output_requirements", Weight: 15, Description: "Report format and structure"},
			{Name: "metrics_definition", Weight: 15, Description: "KPIs and metrics specified"},
			{Name: "scope_boundaries", Weight: 15, Description: "Analysis scope is well-defined"},
			{Name: "actionability", Weight: 15, Description: "Can be executed with available data"},
		},
	},
	KindGeneral: {
		Kind:        KindGeneral,
		Description: "A versatile agent for general prompts that don't fit into coding, creative, or analysis categories.",
		Framing:     generalFraming,
		Rubric: []Criterion{
			{Name: "clarity", Weight: 20, Description: "How clear and unambiguous is the prompt?"},
			{Name: "specificity", Weight: 20, Description: "How specific and detailed is the prompt?"},
			{Name: "context", Weight: 20, Description: "Does the prompt provide necessary context?"},
			{Name: "goal_alignment", Weight: 20, Description: "Is the goal clear and achievable?"},
			{Name: "actionability", Weight: 20, Description: "Can an LLM clearly act on this prompt?"},
		},
	},
}

// Catalog returns every specialist definition in catalog order.
func Catalog() []Definition {
	defs := make([]Definition, 0, len(kinds))
	for _, k := range kinds {
		defs = append(defs, catalog[k])
	}
	return defs
}

// Lookup returns the definition for a specialist kind.
// Returns ErrInvalidKind if the kind is not in the catalog.
func Lookup(kind Kind) (Definition, error) {
	def, ok := catalog[kind]
	if !ok {
		return Definition{}, ErrInvalidKind
	}
	return def, nil
}

// Validate checks every catalog definition's rubric invariant.
// Intended to run once at process start.
func Validate() error {
	for _, k := range kinds {
		if err := catalog[k].Validate(); err != nil {
			return err
		}
	}
	return nil
}
