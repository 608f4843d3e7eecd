package interactive

import "context"

type command struct {
	name         string
	usage        string
	description  string
	minArgs      int
	needsNetwork bool
	quit         bool
	run          func(s *Session, ctx context.Context, args []string) (string, error)
}

var commands []command

func init() {
	commands = []command{
		{name: "help", usage: "help", description: "Show this list", run: (*Session).cmdHelp},
		{name: "load", usage: "load <interactions> [attributes]", description: "Load a network from CSV or XLSX", minArgs: 1, run: (*Session).cmdLoad},
		{name: "stats", usage: "stats", description: "Protein, interaction and kind counts", needsNetwork: true, run: (*Session).cmdStats},
		{name: "neighbors", usage: "neighbors <protein>", description: "Interaction partners in edge order", minArgs: 1, needsNetwork: true, run: (*Session).cmdNeighbors},
		{name: "degree", usage: "degree <protein>", description: "Number of interaction endpoints", minArgs: 1, needsNetwork: true, run: (*Session).cmdDegree},
		{name: "path", usage: "path <from> <to>", description: "Shortest path between two proteins", minArgs: 2, needsNetwork: true, run: (*Session).cmdPath},
		{name: "subnet", usage: "subnet <seed> [seed...]", description: "Subnetwork reachable from the seeds", minArgs: 1, needsNetwork: true, run: (*Session).cmdSubnet},
		{name: "attr", usage: "attr <protein>", description: "Attributes of a protein", minArgs: 1, needsNetwork: true, run: (*Session).cmdAttr},
		{name: "profile", usage: "profile <protein>", description: "Interactions grouped by type", minArgs: 1, needsNetwork: true, run: (*Session).cmdProfile},
		{name: "filter", usage: "filter <min_score>", description: "Interactions with score at least min_score", minArgs: 1, needsNetwork: true, run: (*Session).cmdFilter},
		{name: "risk", usage: "risk", description: "Overall cardiotoxicity risk", needsNetwork: true, run: (*Session).cmdRisk},
		{name: "targets", usage: "targets", description: "Drug target candidates", needsNetwork: true, run: (*Session).cmdTargets},
		{name: "predict", usage: "predict", description: "Active pathway prediction", needsNetwork: true, run: (*Session).cmdPredict},
		{name: "exit", usage: "exit", description: "Leave the shell", quit: true},
		{name: "quit", usage: "quit", description: "Leave the shell", quit: true},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}
