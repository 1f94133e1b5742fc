// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package handlers

import (
	"strings"

	"github.com/shedux/extraplaceholders/internal/bolt"
)

// soloWinner picks the winner of a solo match: the first participant
// found alive in roster order, else the highest-points participant.
// The strict comparison keeps the earliest participant on point ties.
func soloWinner(m bolt.Match) *bolt.Participant {
	var best *bolt.Participant
	for _, id := range m.Roster() {
		p := m.Participant(id)
		if p == nil {
			continue
		}
		if p.Alive {
			return p
		}
		if best == nil || p.Points > best.Points {
			best = p
		}
	}
	return best
}

// soloLoser is the first roster participant who is not the winner.
func soloLoser(m bolt.Match, winner *bolt.Participant) *bolt.Participant {
	if winner == nil {
		return nil
	}
	for _, id := range m.Roster() {
		p := m.Participant(id)
		if p == nil || p.ID == winner.ID {
			continue
		}
		return p
	}
	return nil
}

// teamPair resolves (winner, loser) for a team match from the
// distinct teams found in roster order. Exactly two teams compare by
// alive count, then by points, with ties favoring the second team
// unless the first holds strictly more points. Any other team count
// keeps roster order: the first team wins and the next distinct team,
// if any, loses. A single resolvable team wins with no loser.
func teamPair(m bolt.Match) (winner, loser *bolt.Team) {
	var teams []*bolt.Team
	for _, id := range m.Roster() {
		t := m.Team(id)
		if t == nil || containsTeam(teams, t.ID) {
			continue
		}
		teams = append(teams, t)
	}

	switch len(teams) {
	case 0:
		return nil, nil
	case 1:
		return teams[0], nil
	case 2:
	default:
		return teams[0], teams[1]
	}

	first, second := teams[0], teams[1]
	switch {
	case first.AliveCount > second.AliveCount:
		return first, second
	case second.AliveCount > first.AliveCount:
		return second, first
	case second.Points >= first.Points:
		return second, first
	default:
		return first, second
	}
}

func containsTeam(teams []*bolt.Team, id string) bool {
	for _, t := range teams {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ffaWinner picks the highest-points participant still alive, falling
// back to the overall highest-points participant when nobody is.
func ffaWinner(m bolt.Match) *bolt.Participant {
	var bestAlive, bestAny *bolt.Participant
	for _, id := range m.Roster() {
		p := m.Participant(id)
		if p == nil {
			continue
		}
		if bestAny == nil || p.Points > bestAny.Points {
			bestAny = p
		}
		if p.Alive && (bestAlive == nil || p.Points > bestAlive.Points) {
			bestAlive = p
		}
	}
	if bestAlive != nil {
		return bestAlive
	}
	return bestAny
}

// ffaLosers collects the display names of every resolvable
// participant except the winner, in roster order. Participants without
// a live identity have no usable name and are skipped.
func ffaLosers(m bolt.Match, winner *bolt.Participant) []string {
	if winner == nil {
		return nil
	}
	var names []string
	for _, id := range m.Roster() {
		p := m.Participant(id)
		if p == nil || p.ID == winner.ID || !p.Online {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}

// participantName resolves a participant to a display name, or the
// unavailable message when no live identity is attached.
func participantName(p *bolt.Participant, unavailable string) string {
	if p == nil || !p.Online {
		return unavailable
	}
	return p.Name
}

// teamName joins a team's member names, or the unavailable message
// for a missing or empty team.
func teamName(t *bolt.Team, unavailable string) string {
	if t == nil || len(t.Members) == 0 {
		return unavailable
	}
	return strings.Join(t.Members, ", ")
}
