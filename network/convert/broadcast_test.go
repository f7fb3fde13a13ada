package convert

import (
	"sort"
	"testing"
)

type session struct {
	name string
	conv *TypeConverter
}

func (s *session) TypeConverter() *TypeConverter { return s.conv }
func (s *session) ProtocolID() int               { return s.conv.ProtocolID() }

func twoConverters(t *testing.T) (*TypeConverter, *TypeConverter) {
	t.Helper()
	r, _ := testRegistry(t)
	a, err := r.Get(671)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Get(685)
	if err != nil {
		t.Fatal(err)
	}
	return a, b
}

func TestGroupByConverter(t *testing.T) {
	a, b := twoConverters(t)
	s1, s2, s3 := &session{"s1", a}, &session{"s2", a}, &session{"s3", b}

	groups := GroupByConverter([]*session{s1, s2, s3, s1})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[a]) != 2 || len(groups[b]) != 1 {
		t.Errorf("group sizes = {%d, %d}, want {2, 1}", len(groups[a]), len(groups[b]))
	}

	seen := map[*session]int{}
	for conv, members := range groups {
		for _, m := range members {
			if m.conv != conv {
				t.Errorf("%s grouped under the wrong converter", m.name)
			}
			seen[m]++
		}
	}
	for _, s := range []*session{s1, s2, s3} {
		if seen[s] != 1 {
			t.Errorf("%s appears %d times, want 1", s.name, seen[s])
		}
	}
}

func TestGroupByProtocol(t *testing.T) {
	a, b := twoConverters(t)
	groups := GroupByProtocol([]*session{{"s1", a}, {"s2", b}, {"s3", b}})
	if len(groups[671]) != 1 || len(groups[685]) != 2 {
		t.Errorf("unexpected groups %v", groups)
	}
}

func TestBroadcastByTypeConverter(t *testing.T) {
	a, b := twoConverters(t)
	recipients := []*session{{"s1", a}, {"s2", a}, {"s3", b}}

	var builds []int
	var sent []string
	BroadcastByTypeConverter(recipients,
		func(c *TypeConverter) []string {
			builds = append(builds, c.ProtocolID())
			if c == b {
				return nil
			}
			return []string{"packet"}
		},
		func(group []*session, packets []string) {
			for _, s := range group {
				sent = append(sent, s.name)
			}
		},
	)

	sort.Ints(builds)
	if len(builds) != 2 || builds[0] != 671 || builds[1] != 685 {
		t.Errorf("packets built for %v, want once per converter", builds)
	}
	sort.Strings(sent)
	if len(sent) != 2 || sent[0] != "s1" || sent[1] != "s2" {
		t.Errorf("sent to %v, groups without packets must be skipped", sent)
	}
}
