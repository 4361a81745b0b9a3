package score

// Tier is the discretized outcome of a single scoring check.
type Tier int

const (
	NotScored Tier = iota
	Perfect
	Good
	Bad
	Miss
)

// Tiers lists the scored tiers from best to worst.
var Tiers = []Tier{Perfect, Good, Bad, Miss}

const (
	perfectRadius = 15
	goodRadius    = 50
	badRadius     = 100
	missRadius    = 200
)

func (t Tier) Score() int {
	switch t {
	case Perfect:
		return 10
	case Good:
		return 5
	case Bad:
		return -1
	case Miss:
		return -5
	}
	return 0
}

func (t Tier) String() string {
	switch t {
	case Perfect:
		return "PERFECT"
	case Good:
		return "GOOD"
	case Bad:
		return "BAD"
	case Miss:
		return "MISS"
	}
	return ""
}

// Scored reports whether the tier carries a label and a score.
func (t Tier) Scored() bool {
	return t != NotScored
}

// Judge maps the distance of a note from the target line to a tier.
// A triggered check is judged by radius; an untriggered one only scores,
// as a miss, once the note has left the screen.
func Judge(distance int, triggered, offScreen bool) Tier {
	if distance < 0 {
		distance = -distance
	}
	if triggered {
		switch {
		case distance <= perfectRadius:
			return Perfect
		case distance <= goodRadius:
			return Good
		case distance <= badRadius:
			return Bad
		case distance <= missRadius:
			return Miss
		}
		return NotScored
	}
	if offScreen {
		return Miss
	}
	return NotScored
}
