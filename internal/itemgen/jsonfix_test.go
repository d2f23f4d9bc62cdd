package itemgen

import "testing"

func TestParseObject_Raw(t *testing.T) {
	obj, err := ParseObject(`{"question": "What is 5 + 3?", "correct_answer": "8"}`)
	if err != nil {
		t.Fatal(err)
	}
	if obj["question"] != "What is 5 + 3?" {
		t.Errorf("question = %v", obj["question"])
	}
}

func TestParseObject_FencedBlock(t *testing.T) {
	text := "Here is the question:\n```json\n{\"question\": \"What is 2 + 2?\", \"correct_answer\": \"4\"}\n```\nDone."
	obj, err := ParseObject(text)
	if err != nil {
		t.Fatal(err)
	}
	if obj["correct_answer"] != "4" {
		t.Errorf("correct_answer = %v", obj["correct_answer"])
	}
}

func TestParseObject_EmbeddedObject(t *testing.T) {
	text := `Sure! {"question": "What is 1 + 1?", "correct_answer": "2"} Hope that helps.`
	obj, err := ParseObject(text)
	if err != nil {
		t.Fatal(err)
	}
	if obj["question"] != "What is 1 + 1?" {
		t.Errorf("question = %v", obj["question"])
	}
}

func TestParseObject_LatexEscapes(t *testing.T) {
	// \( \) and \times are invalid JSON escapes produced by LaTeX output.
	text := `{"question": "What is \(4 \times 4\)?", "correct_answer": "16"}`
	obj, err := ParseObject(text)
	if err != nil {
		t.Fatal(err)
	}
	if obj["correct_answer"] != "16" {
		t.Errorf("correct_answer = %v", obj["correct_answer"])
	}
}

func TestParseObject_ArrayUnwrapped(t *testing.T) {
	obj, err := ParseObject(`[{"question": "Q1", "correct_answer": "a"}]`)
	if err != nil {
		t.Fatal(err)
	}
	if obj["question"] != "Q1" {
		t.Errorf("question = %v", obj["question"])
	}
}

func TestParseObject_Garbage(t *testing.T) {
	if _, err := ParseObject("I could not generate a question this time."); err == nil {
		t.Error("expected error for non-JSON text")
	}
}

func TestFixInvalidEscapes_PreservesStructural(t *testing.T) {
	in := `{"a": "quote \" and backslash \\ and latex \sqrt"}`
	out := fixInvalidEscapes(in)
	obj, err := ParseObject(out)
	if err != nil {
		t.Fatalf("repaired text still invalid: %v", err)
	}
	want := `quote " and backslash \ and latex \sqrt`
	if obj["a"] != want {
		t.Errorf("a = %q, want %q", obj["a"], want)
	}
}
