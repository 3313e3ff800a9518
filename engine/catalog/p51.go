package catalog

import "github.com/AeroDexAI/aerodex-mvp/engine/domain"

// P51Mustang describes the P-51 Mustang page. Every chunk is literal; this
// page carries no fields worth extracting.
func P51Mustang() EntitySpec {
	return EntitySpec{
		Name:       "P-51 Mustang",
		EntityType: "aircraft",
		Category:   "Fighters",
		SourceText: p51PageText,
		Chunks: []ChunkSpec{
			{
				Suffix:   "general_info",
				InfoType: domain.InfoGeneral,
				Text: "The North American P-51 Mustang (referred to as simply the 'P-51 Mustang' in War Tycoon) " +
					"is a WW2-era fighter. It is unlocked after purchasing it for $700,000 in the Plane Hangar at Rebirth 7. " +
					"It has a seating capacity of 1, 1 hull, 1 weapon, 1 engine, and the utility 'Zoom In'.",
				Metadata: map[string]any{
					"price":                700000,
					"unlock_method":        "Purchase",
					"unlock_location":      "Plane Hangar",
					"unlock_rebirth_level": 7,
					"seating_capacity":     1,
					"hulls":                1,
					"weapons_count":        1,
					"engines_count":        1,
					"utility":              []any{"Zoom In"},
				},
			},
			{
				Suffix:   "overview_full_text",
				InfoType: domain.InfoOverviewFull,
				Text:     p51OverviewText,
				Metadata: map[string]any{
					"section_title": "Overview",
				},
			},
			{
				Suffix:   "overview_concise",
				InfoType: domain.InfoOverviewSummary,
				Text: "The P-51 Mustang is considered one of the weakest vehicles due to no flares, " +
					"vulnerable to lock-on missiles and anti-air. " +
					"However, it excels in Close Air Support (CAS) roles with powerful AoE damage " +
					"against lightly armored vehicles and infantry. " +
					"It's a cheap, effective CAS aircraft but struggles in other roles.",
				Metadata: map[string]any{
					"strengths": []any{
						"Close Air Support (CAS)",
						"Area of Effect (AoE) damage",
						"engaging lightly armored vehicles and exposed infantry",
						"finishing off severely damaged tanks",
						"cheap",
					},
					"weaknesses": []any{
						"no flares",
						"vulnerable to lock-on missiles",
						"vulnerable to anti-air",
					},
					"role": "Close Air Support (CAS)",
				},
			},
			{
				Suffix:   "armament_20mm_cannons",
				InfoType: domain.InfoArmament,
				Text: "Equipped with four 20mm cannons mounted to its wings, which function similarly to a machine gun " +
					"due to their lower individual fire rate compared to rotary cannons. Combined, they deal significant " +
					"damage-per-shot and fire over a larger area with alternating patterns.",
				Metadata: map[string]any{
					"weapon_type":           "20mm Cannons",
					"count":                 4,
					"mount_location":        "wings",
					"function_analogy":      "machine gun",
					"damage_characteristic": "significant damage-per-shot (combined)",
				},
			},
			{
				Suffix:   "armament_50cal_mg",
				InfoType: domain.InfoArmament,
				Text: "Comes with a single .50 caliber machine gun mounted underneath the nose. Limited effectiveness " +
					"by itself, but provides extra attrition damage when combined with 20mm cannons.",
				Metadata: map[string]any{
					"weapon_type":            ".50 Caliber Machine Gun",
					"count":                  1,
					"mount_location":         "underneath the nose",
					"effectiveness_alone":    "limited",
					"combined_effectiveness": "extra attrition damage",
				},
			},
			{
				Suffix:   "stats_speed",
				InfoType: domain.InfoStats,
				Text:     "Speed (Minimum): 205 MPH, Speed (Maximum): 266 MPH. Tier 1 and Tier 2 speeds are [TBA].",
				Metadata: map[string]any{
					"stat_type": "Speed",
					"unit":      "MPH",
					"tiers": map[string]any{
						"Non-Upgraded": 205,
						"Tier 1":       nil,
						"Tier 2":       nil,
						"Tier 3":       266,
					},
				},
			},
			{
				Suffix:   "stats_health",
				InfoType: domain.InfoStats,
				Text:     "Health (Minimum): 650 HP, Health (Maximum): 845 HP. Tier 1: 715 HP, Tier 2: 780 HP.",
				Metadata: map[string]any{
					"stat_type": "Health",
					"unit":      "HP",
					"tiers": map[string]any{
						"Non-Upgraded": 650,
						"Tier 1":       715,
						"Tier 2":       780,
						"Tier 3":       845,
					},
				},
			},
			{
				Suffix:   "category_membership",
				InfoType: domain.InfoCategory,
				Text:     "The P-51 Mustang is classified under the 'Fighters' category of planes.",
				Metadata: map[string]any{
					"aircraft_category": "Fighters",
				},
			},
		},
	}
}

// p51OverviewText is the Overview section as it appears on the page,
// including the stats tables flattened by the wiki export.
const p51OverviewText = `The P-51 Mustang is regarded as one of the weakest and most vulnerable vehicles in the entire game due to having no flares. Since it's a plane, it does not have the luxury of having the maneuverability of helicopters to linger in their flares, avoid lock-on missiles, and counter anti-air vehicles such as the Pantsir S1 and Patriot AA, which are extremely effective against the P-51 and other planes. The P-51 Mustang is equipped with four 20mm cannons mounted to its wings, which function similarly to a machine gun due to their lower individual fire rate when compared to the rotary cannons mounted to other planes such as the F-4 Phantom, F-14 Tomcat, and F-16 Falcon to name a few. The P-51's 20mm cannons combined, however, deal significant damage-per-shot and are able to fire over a larger area with each cannon shooting in an alternating pattern to maximise fire rate and coverage. The P-51 Mustang also comes with a single .50 caliber machine gun mounted underneath the nose, which, although by itself has a limited effectiveness, when combined with the more powerful 20mm cannons, the .50 caliber provides extra attrition damage against enemy vehicles and exposed infantry. Much like its real-life counterpart, the P-51 Mustang serves as an effective plane for Close Air Support (CAS) roles. Its powerful Area of Effect (AoE) damage makes the platform well suited for engaging lightly armored vehicles and exposed infantry whilst also being able to finish off severely damaged tanks in specific circumstances.
Evaluating this plane, if used correctly, the P-51 Mustang is a cheap, effective CAS aircraft but falters in other roles due to the divide between its skill requirements and effectiveness against other, more advanced planes.
Stats
Firepower
Armament
Damage Per Shot (Non-Upgraded)
Damage Per Shot (Tier 1)
Damage Per Shot (Tier 2)
Damage Per Shot (Tier 3)
20mm Cannons
[TBA]
[TBA]
[TBA]
[TBA]
.50 Caliber Machine Gun
[TBA]
[TBA]
[TBA]
[TBA]
Speed
Speed (Non-Upgraded)
Speed (Tier 1)
Speed (Tier 2)
Speed (Tier 3)
205 MPH
[TBA] MPH
[TBA] MPH
266 MPH
Health
Health (Non-Upgraded)
Health (Tier 1)
Health (Tier 2)
Health (Tier 3)
650 HP
715 HP
780 HP
845 HP
`

// p51PageText is the raw page export fed through the scrubber.
const p51PageText = `The North American P-51 Mustang (referred to as simply the 'P-51 Mustang' in War Tycoon) is a WW2-era fighter. It is unlocked after purchasing it for $700,000 in the Plane Hangar at Rebirth 7. It has a seating capacity of 1, 1 hull, 1 weapon, 1 engine, and the utility 'Zoom In'.
` + p51OverviewText
