// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package handlers

import "github.com/shedux/extraplaceholders/internal/bolt"

// KitRule is a boolean query over a kit snapshot.
type KitRule func(*bolt.Kit) bool

// KitRules builds the rule lookup table, keyed by the lowercase rule
// token players use in placeholders. The map is built once at startup
// and shared read-only by every resolution; lookups for unknown names
// resolve to false rather than erroring.
func KitRules() map[string]KitRule {
	return map[string]KitRule{
		"enabled":           func(k *bolt.Kit) bool { return k.Enabled },
		"ranked":            func(k *bolt.Kit) bool { return k.Ranked },
		"build":             func(k *bolt.Kit) bool { return k.Build },
		"showhp":            func(k *bolt.Kit) bool { return k.ShowHP },
		"spleef":            func(k *bolt.Kit) bool { return k.Spleef },
		"battlerush":        func(k *bolt.Kit) bool { return k.BattleRush },
		"fireballfight":     func(k *bolt.Kit) bool { return k.FireballFight },
		"pearlfight":        func(k *bolt.Kit) bool { return k.PearlFight },
		"bridges":           func(k *bolt.Kit) bool { return k.Bridges },
		"pearldamage":       func(k *bolt.Kit) bool { return k.PearlDamage },
		"nodrop":            func(k *bolt.Kit) bool { return k.NoDrop },
		"noregen":           func(k *bolt.Kit) bool { return k.NoRegen },
		"nofall":            func(k *bolt.Kit) bool { return k.NoFall },
		"nohunger":          func(k *bolt.Kit) bool { return k.NoHunger },
		"blockremoval":      func(k *bolt.Kit) bool { return k.BlockRemoval },
		"respawnmode":       func(k *bolt.Kit) bool { return k.RespawnMode },
		"legacycombat":      func(k *bolt.Kit) bool { return k.LegacyCombat },
		"buildheightdamage": func(k *bolt.Kit) bool { return k.BuildHeightDamage },
		"topfight":          func(k *bolt.Kit) bool { return k.TopFight },
		"bedfight":          func(k *bolt.Kit) bool { return k.BedFight },
		"stickfight":        func(k *bolt.Kit) bool { return k.StickFight },
		"stickspawn":        func(k *bolt.Kit) bool { return k.StickSpawn },
		"partyffa":          func(k *bolt.Kit) bool { return k.PartyFFA },
		"partysplit":        func(k *bolt.Kit) bool { return k.PartySplit },
		"voidspawn":         func(k *bolt.Kit) bool { return k.VoidSpawn },
		"boxing":            func(k *bolt.Kit) bool { return k.Boxing },
		"combo":             func(k *bolt.Kit) bool { return k.Combo },
		"sumo":              func(k *bolt.Kit) bool { return k.Sumo },
		"liquidkill":        func(k *bolt.Kit) bool { return k.LiquidKill },
		"mlgrush":           func(k *bolt.Kit) bool { return k.MlgRush },
		"crystalpvp":        func(k *bolt.Kit) bool { return k.CrystalPvP },
		"cartpvp":           func(k *bolt.Kit) bool { return k.CartPvP },
		"tntsumo":           func(k *bolt.Kit) bool { return k.TntSumo },
		"windchargemode":    func(k *bolt.Kit) bool { return k.WindChargeMode },
		"oitq":              func(k *bolt.Kit) bool { return k.Oitq },
		"presplash":         func(k *bolt.Kit) bool { return k.PreSplash },
		"breakmap":          func(k *bolt.Kit) bool { return k.BreakMap },
		"pearlcooldown":     func(k *bolt.Kit) bool { return k.PearlCooldown },
		"editable":          func(k *bolt.Kit) bool { return k.Editable },
		"ffa":               func(k *bolt.Kit) bool { return k.FFA },
		"portal":            func(k *bolt.Kit) bool { return k.Portal },
	}
}
