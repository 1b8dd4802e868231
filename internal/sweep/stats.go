package sweep

// MailboxStats accumulates counters for a single mailbox scan. PerRule may
// double-count a message matched by several rules; Unique is deduplicated by
// UID.
type MailboxStats struct {
	PerRule       map[string]int
	Unique        int
	Deleted       int
	MissingSender int
}

func NewMailboxStats() *MailboxStats {
	return &MailboxStats{PerRule: map[string]int{}}
}

func (s *MailboxStats) countRule(rule string) {
	s.PerRule[rule]++
}

// RunStats aggregates mailbox counters across a run. Mailboxes preserves
// processing order for reporting.
type RunStats struct {
	PerRule       map[string]int
	Unique        int
	Deleted       int
	MissingSender int

	Mailboxes []string
	PerBox    map[string]*MailboxStats
}

func NewRunStats() *RunStats {
	return &RunStats{
		PerRule: map[string]int{},
		PerBox:  map[string]*MailboxStats{},
	}
}

// Merge folds a completed mailbox's counters into the run totals.
func (g *RunStats) Merge(mailbox string, s *MailboxStats) {
	for rule, n := range s.PerRule {
		g.PerRule[rule] += n
	}
	g.Unique += s.Unique
	g.Deleted += s.Deleted
	g.MissingSender += s.MissingSender
	g.Mailboxes = append(g.Mailboxes, mailbox)
	g.PerBox[mailbox] = s
}
