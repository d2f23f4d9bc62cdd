package curriculum

// StarterTopicName identifies the built-in topic installed by `drill seed`.
const StarterTopicName = "First Grade Math"

// StarterConcepts returns the built-in first-grade arithmetic curriculum.
// IDs are zero here; the store assigns them on insert and rewrites the
// prerequisite references (expressed as indexes into the returned slice).
func StarterConcepts() (Topic, []Concept, [][]int) {
	topic := Topic{
		Name:        StarterTopicName,
		Description: "Counting, addition and subtraction within 20, place value, time, and measurement.",
	}

	concepts := []Concept{
		{Name: "Counting to 120", Description: "Count forward from any number up to 120, read and write numerals.", OrderIndex: 0, MasteryThreshold: 0.75},
		{Name: "Addition within 10", Description: "Add two numbers with sums up to 10 using counting on and number bonds.", OrderIndex: 1, MasteryThreshold: 0.75},
		{Name: "Subtraction within 10", Description: "Subtract within 10, understand subtraction as taking apart and taking from.", OrderIndex: 2, MasteryThreshold: 0.75},
		{Name: "Addition within 20", Description: "Add within 20 using making ten and doubles strategies.", OrderIndex: 3, MasteryThreshold: 0.75},
		{Name: "Subtraction within 20", Description: "Subtract within 20, relate subtraction to addition.", OrderIndex: 4, MasteryThreshold: 0.75},
		{Name: "Missing numbers", Description: "Find the unknown number in addition and subtraction equations like 8 + __ = 11.", OrderIndex: 5, MasteryThreshold: 0.75},
		{Name: "Place value: tens and ones", Description: "Understand two-digit numbers as tens and ones.", OrderIndex: 6, MasteryThreshold: 0.75},
		{Name: "Word problems within 20", Description: "Solve add-to, take-from, and compare word problems within 20.", OrderIndex: 7, MasteryThreshold: 0.75},
		{Name: "Telling time", Description: "Read analog clocks to the hour and half hour.", OrderIndex: 8, MasteryThreshold: 0.75},
		{Name: "Comparing lengths", Description: "Order objects by length; compare lengths using a third object.", OrderIndex: 9, MasteryThreshold: 0.75, VisualRequired: true},
	}

	// Prerequisites as indexes into the concepts slice above.
	prereqs := [][]int{
		{},     // Counting to 120
		{0},    // Addition within 10
		{1},    // Subtraction within 10
		{1},    // Addition within 20
		{2, 3}, // Subtraction within 20
		{3, 4}, // Missing numbers
		{0},    // Place value
		{3, 4}, // Word problems
		{0},    // Telling time
		{},     // Comparing lengths
	}

	return topic, concepts, prereqs
}
