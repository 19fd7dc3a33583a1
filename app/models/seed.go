package models

import "time"

// SeedPosts returns the fixed demo feed served when the datastore is
// unreachable ("fallback mode") and inserted by the seed command.
// Timestamps are anchored to now so the feed always looks alive.
func SeedPosts(now time.Time) []Post {
	return []Post{
		{
			ID:        "p-1",
			Author:    "Aki Tanaka",
			Handle:    "@aki_design",
			Content:   "立て続けに3日 ship。夜の静けさ＋Next.js App Router の組み合わせ、やっぱり最強。",
			CreatedAt: now.Add(-45 * time.Minute),
			Tags:      []string{"shipdaily", "nextjs", "nightshift"},
			Likes:     42,
			Boosts:    11,
			Replies:   6,
			AvatarHue: 210,
		},
		{
			ID:        "p-2",
			Author:    "Leo Martinez",
			Handle:    "@leo_makes",
			Content:   "Launched a vibes-only community wall with Vercel Edge Functions today. Sub-50ms everywhere 🌍⚡️",
			CreatedAt: now.Add(-3 * time.Hour),
			Tags:      []string{"vercel", "edge", "shipdaily"},
			Likes:     65,
			Boosts:    18,
			Replies:   9,
			AvatarHue: 32,
		},
		{
			ID:        "p-3",
			Author:    "Kana",
			Handle:    "@kana_wave",
			Content:   "コミュニティの声、全部AI要約に任せたら21時に余裕で散歩できた。Pulsewave でも試したい。",
			CreatedAt: now.Add(-8 * time.Hour),
			Tags:      []string{"ai", "workflow", "weekend"},
			Likes:     38,
			Boosts:    7,
			Replies:   4,
			AvatarHue: 320,
		},
		{
			ID:        "p-4",
			Author:    "Noah Park",
			Handle:    "@noah.codes",
			Content:   "Micro-interactions are everything. Added tactile reactions + soft audio cues and retention spiked 17%.",
			CreatedAt: now.Add(-15 * time.Hour),
			Tags:      []string{"ux", "motion", "buildinpublic"},
			Likes:     54,
			Boosts:    12,
			Replies:   8,
			AvatarHue: 260,
		},
		{
			ID:        "p-5",
			Author:    "Sora",
			Handle:    "@sora_codes",
			Content:   "朝ごはんの前に小さなSNS MVPをVercelに投げた。無駄な設定ゼロ… もう戻れない。",
			CreatedAt: now.Add(-24 * time.Hour),
			Tags:      []string{"vercel", "mvp", "founder"},
			Likes:     71,
			Boosts:    21,
			Replies:   10,
			AvatarHue: 180,
		},
	}
}
