package catalog

import (
	"regexp"

	"github.com/AeroDexAI/aerodex-mvp/engine/domain"
	"github.com/AeroDexAI/aerodex-mvp/engine/scrub"
)

// mig29GeneralInfoPattern walks the General Information box: price, speed and
// health ranges, armament and utility summaries, seating, then part counts.
var mig29GeneralInfoPattern = regexp.MustCompile(`(?s)The Mikoyan-Gurevich MiG-29 Fulcrum is a Soviet-Era multi-role fighter jet used primarily by the Russian Air Force\.` +
	`\s*It is unlocked after completing Operation Aerial Ace and can be found in the Plane Hangar after reaching Rebirth 7\.` +
	`.*?Price\s*\$([0-9,]+).*?` +
	`Speed \(Minimum\)(.*?)(?:MPH|\s*\[TBA\]\s*MPH)Speed \(Maximum\)(.*?)(?:MPH|\s*\[TBA\]\s*MPH)` +
	`Health \(Minimum\)(.*?)(?:HP)Health \(Maximum\)(.*?)(?:HP)` +
	`Armament\s*-\s*(.+?);\s*-\s*(.+?)\.` +
	`\s*Utility\s*-\s*(.+?);\s*-\s*(.+?);\s*-\s*(.+?)` +
	`\s*Seating Capacity\s*(\d+)` +
	`\s*Hulls\s*(\d+)\s*Weapons\s*(\d+)\s*Engines\s*(\d+)`)

var mig29OverviewPattern = regexp.MustCompile(`(?s)Overview\nMiG-29 Fulcrum\n.*?General Information.*?The Mikoyan-Gurevich MiG-29 Fulcrum is known for its role as an early-game fighter jet within War Tycoon\.(.*?)(?:History\n|Stats\n)`)

var mig29HistoryPattern = regexp.MustCompile(`(?s)(During the Vietnam war, it was clear to the USAF.*?)(?:Stats\nFirepower|Speed\n|Health\n|$)`)

// MiG29Fulcrum describes the MiG-29 Fulcrum page. Unlike the WW2 fighters,
// parts of this entry are extracted from the page text with fallbacks for
// when the export format drifts.
func MiG29Fulcrum() EntitySpec {
	return EntitySpec{
		Name:       "MiG-29 Fulcrum",
		EntityType: "aircraft",
		Category:   "Fighter Jets",
		SourceText: mig29PageText,
		ExtraRules: []scrub.Rule{
			scrub.TOCListRule(`1Overview\s*2History\s*3Stats\s*3\.1Firepower\s*3\.2Speed\s*3\.3Health`),
			scrub.LiteralRule("collapse-widget", "Collapse"),
		},
		Chunks: []ChunkSpec{
			{
				Suffix:   "general_info",
				InfoType: domain.InfoGeneral,
				Text: "The Mikoyan-Gurevich MiG-29 Fulcrum is a Soviet-Era multi-role fighter jet used primarily by the Russian Air Force. " +
					"It is unlocked after completing Operation Aerial Ace and can be found in the Plane Hangar after reaching Rebirth 7. " +
					"It has a price of $850,000, seating capacity of 2, 1 hull, 2 weapons, 1 engine. " +
					"Its armament includes 1x 30mm Autocannon and 6x Air-to-Air Missiles. " +
					"Utilities include Flares, 2x Ejection Seats, and Zoom In.",
				Metadata: map[string]any{
					"unlock_method":               "Operation Aerial Ace",
					"unlock_details":              "Kill 30 enemy players with any plane",
					"hangar_access_rebirth_level": 7,
				},
				MetaFrom: &MetaExtract{
					Pattern: mig29GeneralInfoPattern,
					Fields: []MetaField{
						{Key: "price", Fallback: "850000", Int: true},
						{Key: "speed_min_display", Fallback: "275"},
						{Key: "speed_max_display", Fallback: "[TBA]"},
						{Key: "health_min_display", Fallback: "680"},
						{Key: "health_max_display", Fallback: "884"},
						{Key: "initial_armament_summary", Fallback: "1x 30mm Autocannon", List: true},
						{Key: "initial_armament_summary", Fallback: "6x Air-to-Air Missiles", List: true},
						{Key: "utility", Fallback: "Flares", List: true},
						{Key: "utility", Fallback: "2x Ejection Seats", List: true},
						{Key: "utility", Fallback: "Zoom In", List: true},
						{Key: "seating_capacity", Fallback: "2", Int: true},
						{Key: "hulls", Fallback: "1", Int: true},
						{Key: "weapons_count", Fallback: "2", Int: true},
						{Key: "engines_count", Fallback: "1", Int: true},
					},
				},
			},
			{
				Suffix:   "overview_full_text",
				InfoType: domain.InfoOverviewFull,
				TextFrom: &Extract{Pattern: mig29OverviewPattern, Fallback: ""},
				Metadata: map[string]any{
					"section_title": "Overview",
				},
			},
			{
				Suffix:   "overview_concise",
				InfoType: domain.InfoOverviewSummary,
				Text: "The MiG-29 Fulcrum is an early-game multi-role fighter jet known for its relatively simple unlock requirements (Operation Aerial Ace) " +
					"and strong combat capabilities despite being an early-game option. " +
					"It features a potent 30mm autocannon effective for base shield destruction and air-to-ground engagements, " +
					"and 6 air-to-air missiles which can be used to bait enemy flares. " +
					"Unlike the P-51, it has flares, making it less vulnerable to lock-on missiles. " +
					"While not as agile as some modern jets at higher speeds, it excels in close-range dogfights at slower speeds. " +
					"It's a significant upgrade from the P-51 Mustang.",
				Metadata: map[string]any{
					"strengths": []any{
						"Early-game fighter", "Simple unlock", "Potent 30mm autocannon",
						"High damage-per-shot (autocannon)", "Effective for base shield destruction",
						"Good for air-to-ground", "6 air-to-air missiles", "Can bait enemy flares",
						"Has flares (unlike P-51)", "Smaller turn radius at slower speeds",
						"Good for close-range dogfights", "Significant upgrade over P-51",
					},
					"weaknesses": []any{
						"Lower DPS (autocannon) compared to 20mm rotary cannons",
						"Smaller damage-per-hit (missiles)", "Requires more missiles to cripple/destroy",
						"Jets cannot linger in flares like helicopters", "More vulnerable to lock-on missiles (Stingers, Pantsir S1)",
						"Not as easy to handle as F-14 Tomcat", "Larger turn radius at higher speeds",
						"May falter against other, more modern planes",
					},
					"role":            "Early-game multi-role fighter",
					"playstyle_notes": "Use autocannon for ground/shields, missiles for air-to-air (including baiting flares), leverage slow-speed maneuverability in dogfights.",
				},
			},
			{
				Suffix:   "armament_30mm_autocannon",
				InfoType: domain.InfoArmament,
				Text: "The MiG-29 possesses a potent 30mm rotary cannon mounted to the right of the cockpit's underside near the nose. " +
					"This rotary cannon has a notably lower DPS (Damage Per Second) when compared to the likes of the 20mm rotary cannons " +
					"mounted on the F-4 Phantom, F-14 Tomcat, and F-16 Falcon. As a direct trade-off to this lowered fire rate, " +
					"the MiG-29's 30mm rotary cannon has a higher damage-per-shot, allowing it to fulfill roles in base shield destruction " +
					"and air-to-ground engagements.",
				Metadata: map[string]any{
					"weapon_type":           "30mm Autocannon",
					"count":                 1,
					"mount_location":        "right of cockpit's underside near nose",
					"dps_comparison":        "lower DPS than 20mm rotary cannons",
					"damage_characteristic": "higher damage-per-shot",
					"roles":                 []any{"base shield destruction", "air-to-ground engagements"},
				},
			},
			{
				Suffix:   "armament_air_to_air_missiles",
				InfoType: domain.InfoArmament,
				Text: "The MiG-29 also possesses a compliment of 6 air-to-air missiles for use against enemy aerial targets, however, " +
					"the trade-off to the fighter's increased munitions payload is the smaller damage-per-hit of each missile. " +
					"This means that the pilot of the MiG-29 needs to fire more missiles against an enemy target to severely cripple " +
					"or destroy it, however, having access to so many missiles allows pilots to \"bait\" enemy aircraft into dispensing " +
					"their flares prematurely, allowing MiG-29 pilots to swiftly launch the remainder of their payload and deal significant damage.",
				Metadata: map[string]any{
					"weapon_type":           "Air-to-Air Missiles",
					"count":                 6,
					"damage_characteristic": "smaller damage-per-hit",
					"usage_strategy":        "can bait enemy aircraft into dispensing flares prematurely",
				},
			},
			{
				Suffix:   "stats_speed",
				InfoType: domain.InfoStats,
				Text:     "Speed (Non-Upgraded): 275 MPH, Speed (Tier 1): [TBA] MPH, Speed (Tier 2): [TBA] MPH, Speed (Tier 3): [TBA] MPH.",
				Metadata: map[string]any{
					"stat_type": "Speed",
					"unit":      "MPH",
					"tiers": map[string]any{
						"Non-Upgraded": 275,
						"Tier 1":       nil,
						"Tier 2":       nil,
						"Tier 3":       nil,
					},
				},
			},
			{
				Suffix:   "stats_health",
				InfoType: domain.InfoStats,
				Text:     "Health (Non-Upgraded): 680 HP, Health (Tier 1): 748 HP, Health (Tier 2): 816 HP, Health (Tier 3): 884 HP.",
				Metadata: map[string]any{
					"stat_type": "Health",
					"unit":      "HP",
					"tiers": map[string]any{
						"Non-Upgraded": 680,
						"Tier 1":       748,
						"Tier 2":       816,
						"Tier 3":       884,
					},
				},
			},
			{
				Suffix:   "history",
				InfoType: domain.InfoHistory,
				TextFrom: &Extract{Pattern: mig29HistoryPattern, Fallback: ""},
				Metadata: map[string]any{
					"section_title": "History",
					"period":        []any{"Vietnam War", "Cold War", "1960s", "1970s", "1980s"},
					"key_events":    []any{"F-X program", "PFI program", "LPFI program", "Maiden flight 1977"},
				},
			},
			{
				Suffix:   "category_membership",
				InfoType: domain.InfoCategory,
				Text:     "The MiG-29 Fulcrum is classified under the 'Fighter Jets' category of planes.",
				Metadata: map[string]any{
					"aircraft_category": "Fighter Jets",
				},
			},
		},
	}
}

// mig29PageText is the raw page export, navigation junk included, fed through
// the scrubber before extraction.
const mig29PageText = `
9


SIGN IN TO EDIT

The Mikoyan-Gurevich MiG-29 Fulcrum is a Soviet-Era multi-role fighter jet used primarily by the Russian Air Force.
It is unlocked after completing Operation Aerial Ace and can be found in the Plane Hangar after reaching Rebirth 7.

Contents

1Overview
2History
3Stats
3.1Firepower
3.2Speed
3.3Health
Overview
MiG-29 Fulcrum

The in-game render for the MiG-29 Fulcrum.
General Information
Price
$850,000
(Requires Operation Aerial Ace to be completed.)
Speed (Minimum)Speed (Maximum)275 MPH[TBA] MPH
Health (Minimum)Health (Maximum)680 HP884 HP
Armament
- 1x 30mm Autocannon;
- 6x Air-to-Air Missiles.
Utility
- Flares;
- 2x Ejection Seats;
- Zoom In
Seating Capacity
2
Vehicle Parts Cost
HullsWeaponsEngines121

The Mikoyan-Gurevich MiG-29 Fulcrum is known for its role as an early-game fighter jet within War Tycoon. Known for its easy Operation, the requirements to unlock the MiG-29 are relatively simple, requiring the player to kill 30 enemy players with any plane.
The MiG-29 possesses a potent 30mm rotary cannon mounted to the right of the cockpit's underside near the nose. This rotary cannon has a notably lower DPS (Damage Per Second) when compared to the likes of the 20mm rotary cannons mounted on the F-4 Phantom, F-14 Tomcat, and F-16 Falcon. As a direct trade-off to this lowered fire rate, the MiG-29's 30mm rotary cannon has a higher damage-per-shot, allowing it to fulfill roles in base shield destruction and air-to-ground engagements.
The MiG-29 also possesses a compliment of 6 air-to-air missiles for use against enemy aerial targets, however, the trade-off to the fighter's increased munitions payload is the smaller damage-per-hit of each missile. This means that the pilot of the MiG-29 needs to fire more missiles against an enemy target to severely cripple or destroy it, however, having access to so many missiles allows pilots to "bait" enemy aircraft into dispensing their flares prematurely, allowing MiG-29 pilots to swiftly launch the remainder of their payload and deal significant damage.
Unlike the P-51 Mustang, the MiG-29 has flares, rendering the P-51 Mustang outclassed compared to this jet. However, jets do not have the luxury of staying in their flares like Helicopters, which makes them more vulnerable to lock-on missiles originating from Stingers, the Pantsir S1, and helicopters. The MiG-29 is not as easy to handle compared to the F-14 Tomcat and has a larger turn radius when compared to its contemporaries at higher speed, however, the MiG-29 possesses a smaller turn radius when traveling at a slower speed, allowing it to combat enemy air targets in close range.
In conclusion, the MiG-29 Fulcrum serves as a significant upgrade compared to the P-51 Mustang, serving as a good early-game fighter jet. When compared to other, more modern planes, the MiG-29 may falter.
History
During the Vietnam war, it was clear to the USAF that low altitude supersonic fighter bombers, like the F-105 Thunderchief and F-104 Starfighter, were extremely vulnerable to the older Soviet models, such as the MiG-17's and more advanced ones such as the MiG-21 were far more more maneuverable. To help regain air superiority over Vietnam, the U.S. employed the F-4 Phantom, while the USSR used the MiG-23 in response. In the late 1960s the USAF started the "F-X" program to build a fighter that would have total air superiority, the following aircraft would become the McDonnell Douglas F-15 Eagle soon after being ordered for production in 1969. During one of the most tense moments of the Cold War, the USSR needed a response or else they would lag behind the United States in technological developments, hence the development of an air superiority fighter was necessary. In the same year the Soviet General Staff would issue the requirement for a Perspektivnyy Frontovoy Istrebitel (PFI "Advanced Frontline Fighter"). The list of demands were ambitious, calling for long range, be able to land almost anywhere such as austere runways, exceptional maneuverability, Mach 2+ speed, and the ability to carry almost everything.
By 1971, a different type of fighter was needed for the Soviet Union. The PFI program was slightly changed with the Perspektivnyy Lyogkiy Frontovoy Istrebitel (LPFI, or "Advanced Lightweight Tactical Fighter") program. The Soviets planned to have a fleet of 33% PFI planes and 66% LPFI planes. This decision aligned closely with the USAF's decision of the Lightweight Fighter program. The role of designing a PFI fighter went to Sukhoi, resulting in the well known Su-27 "Flanker", while the LPFI was assigned to Mikoyan. Production of the MiG-29 would start in 1974, taking its maiden flight on 6 October 1977. The MiG-29 would soon replace the older MiG-23 throughout the 1980s alongside the Su-27.
The aircraft would be given the NATO Reporting name "Fulcrum-A". Soon the aircraft would be widely exported to many of the Warsaw pact countries in downgraded versions. Today while not as impressive as other fighters the Fulcrum does its job extremely well with many countries still operating today including former Warsaw pact members and Russia.
Stats
Firepower
Armament Stats CollapseArmamentDamage Per Shot (Non-Upgraded)Damage Per Shot (Tier 1)Damage Per Shot (Tier 2)Damage Per Shot (Tier 3)30mm Autocannon[TBA][TBA][TBA][TBA]Air-to-Air Missiles[TBA][TBA][TBA][TBA]
Speed
Speed Stats CollapseSpeed (Non-Upgraded)Speed (Tier 1)Speed (Tier 2)Speed (Tier 3)275 MPH[TBA] MPH[TBA] MPH[TBA] MPH
Health
Health Stats CollapseHealth (Non-Upgraded)Health (Tier 1)Health (Tier 2)Health (Tier 3)680 HP748 HP816 HP884 HP
`
