package knowledge

const builtinSection = "Prompt Engineering Fundamentals"

type builtinTip struct {
	topic string
	body  string
}

// The universal tip set used when no corpus document is available.
var builtinTips = []builtinTip{
	{
		topic: "clarity",
		body:  "Clear prompts specify exactly what you want. Avoid ambiguity by using precise language and defining terms that could be interpreted multiple ways.",
	},
	{
		topic: "context",
		body:  "Provide relevant background information. Tell the AI what role it should play, what the situation is, and any constraints or requirements.",
	},
	{
		topic: "examples",
		body:  "Few-shot prompting: Include 2-3 examples of the desired input-output format to guide the model's responses.",
	},
	{
		topic: "structure",
		body:  "Use structured formatting like bullet points, numbered lists, or XML tags to organize complex prompts and expected outputs.",
	},
	{
		topic: "constraints",
		body:  "Specify constraints clearly: length limits, format requirements, topics to avoid, or specific points to include.",
	},
	{
		topic: "chain_of_thought",
		body:  "For reasoning tasks, ask the model to 'think step by step' or 'explain your reasoning' to improve accuracy.",
	},
	{
		topic: "role_prompting",
		body:  "Assign a specific role or persona: 'You are an expert Python developer' helps focus responses on domain expertise.",
	},
	{
		topic: "output_format",
		body:  "Specify the exact output format you want: JSON, markdown, bullet points, or a specific template structure.",
	},
	{
		topic: "iteration",
		body:  "Break complex tasks into subtasks. Use multi-turn conversations to refine and build on previous outputs.",
	},
	{
		topic: "negative_prompts",
		body:  "Specify what NOT to do: 'Do not include disclaimers' or 'Avoid technical jargon' can improve output quality.",
	},
}

func builtinFragments() []Fragment {
	fragments := make([]Fragment, 0, len(builtinTips))
	for _, tip := range builtinTips {
		fragments = append(fragments, newFragment(builtinSection, tip.topic, tip.body))
	}
	return fragments
}
