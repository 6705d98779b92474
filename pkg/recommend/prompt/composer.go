package prompt

import (
	"strings"

	"conevibes-be/pkg/llm"
	"conevibes-be/pkg/recommend/catalog"
)

// Composer assembles the single system message sent with every request:
// task framing, the serialized catalog, and the resolved context blob.
// The catalog block is serialized once at construction since the catalog is
// immutable for the process lifetime; Compose itself is a pure string
// composition with no randomness or timestamps.
type Composer struct {
	catalogBlock string
}

// NewComposer serializes the catalog projection once and returns a composer
// bound to it.
func NewComposer(projections []catalog.Projection) (*Composer, error) {
	block, err := catalog.Serialize(projections)
	if err != nil {
		return nil, err
	}
	return &Composer{catalogBlock: block}, nil
}

// Compose builds the system message for one request. An empty context blob
// omits the context section entirely instead of emitting a blank block.
func (c *Composer) Compose(contextBlob string) llm.Message {
	var prompt strings.Builder

	c.writePersona(&prompt)
	c.writeInstructions(&prompt)
	c.writeCatalog(&prompt)
	c.writeContext(&prompt, contextBlob)
	c.writeReminder(&prompt)

	return llm.Message{
		Role:    llm.RoleSystem,
		Content: prompt.String(),
	}
}

func (c *Composer) writePersona(prompt *strings.Builder) {
	prompt.WriteString("You are an AI music assistant that recommends songs based on user input.\n\n")
}

func (c *Composer) writeInstructions(prompt *strings.Builder) {
	prompt.WriteString("### SONG RECOMMENDATION INSTRUCTIONS\n")
	prompt.WriteString("- Users will provide information about their mood, time of day, and what they're doing.\n")
	prompt.WriteString("- Your task is to select ONE most appropriate song from the available collection.\n")
	prompt.WriteString("- First, analyze the user's input to understand their current context and emotional needs.\n")
	prompt.WriteString("- Then, find songs that match multiple criteria from their input (mood, activity, time of day, etc.).\n")
	prompt.WriteString("- For your recommendation, provide the song title, artist, and a brief explanation of why this song fits their current situation.\n")
	prompt.WriteString("- Make your recommendation conversational and personalized, as if you're a thoughtful friend.\n")
	prompt.WriteString("- If you can't find a perfect match, recommend the closest option and explain your reasoning.\n\n")
}

func (c *Composer) writeCatalog(prompt *strings.Builder) {
	prompt.WriteString("### AVAILABLE SONGS\n")
	prompt.WriteString(c.catalogBlock)
	prompt.WriteString("\n\n")
}

func (c *Composer) writeContext(prompt *strings.Builder, contextBlob string) {
	if contextBlob == "" {
		return
	}
	prompt.WriteString("### CONTEXT FROM USER QUERY\n")
	prompt.WriteString(contextBlob)
	prompt.WriteString("\n\n")
}

func (c *Composer) writeReminder(prompt *strings.Builder) {
	prompt.WriteString("Remember to only recommend songs from this specific collection, and always explain why your suggestion fits their current situation.\n")
}
