package pgwire

import "testing"

func TestReadFieldStream(t *testing.T) {
	var body []byte
	body = append(body, 'S')
	body = append(body, cstr("ERROR")...)
	body = append(body, 'C')
	body = append(body, cstr("42601")...)
	body = append(body, 0)

	fields := readFieldStream(NewReader(body))
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0].tag != 'S' || fields[0].value != "ERROR" {
		t.Fatalf("fields[0] = %+v", fields[0])
	}
}

func TestExtractValueByCodeFirstOccurrenceWins(t *testing.T) {
	fields := []errorNoticeField{
		{tag: 'M', value: "first"},
		{tag: 'M', value: "second"},
	}
	v, ok := extractValueByCode('M', fields)
	if !ok || v != "first" {
		t.Fatalf("got (%q, %v), want (\"first\", true)", v, ok)
	}
}

func TestExtractValueByCodeAbsent(t *testing.T) {
	_, ok := extractValueByCode('H', nil)
	if ok {
		t.Fatal("expected false for absent field")
	}
}

func TestBuildErrorParamsAccumulatesAllMissing(t *testing.T) {
	_, err := buildErrorParams(nil)
	failure, ok := err.(*ErrorResponseDecodingFailure)
	if !ok {
		t.Fatalf("got %T", err)
	}
	want := []string{
		"Required Severity Level was not present.",
		"Required SQLSTATE Code was not present.",
		"Required Message was not present.",
	}
	if len(failure.Messages) != len(want) {
		t.Fatalf("got %v, want %v", failure.Messages, want)
	}
	for i := range want {
		if failure.Messages[i] != want[i] {
			t.Fatalf("Messages[%d] = %q, want %q", i, failure.Messages[i], want[i])
		}
	}
}

func TestBuildErrorParamsOptionalFields(t *testing.T) {
	fields := []errorNoticeField{
		{tag: 'S', value: SeverityError},
		{tag: 'C', value: "23505"},
		{tag: 'M', value: "duplicate key value"},
		{tag: 'D', value: "Key (id)=(1) already exists."},
	}
	params, err := buildErrorParams(fields)
	if err != nil {
		t.Fatal(err)
	}
	if params.Detail == nil || *params.Detail != "Key (id)=(1) already exists." {
		t.Fatalf("Detail = %v", params.Detail)
	}
	if params.Hint != nil {
		t.Fatalf("Hint = %v, want nil", params.Hint)
	}
}
