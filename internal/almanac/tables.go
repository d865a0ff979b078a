package almanac

import (
	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/relation"
)

var dayMasters = [bazi.StemCount]DayMasterProfile{
	{
		Stem: bazi.StemJia, Keywords: "正直、担当",
		Nature:      "宛如参天大树，挺拔正直。丙午之年，木生火燃，需防过度消耗，守住根基。",
		Cultivation: "仁者无忧",
		RiskTip:     "火旺木焚，凡事切忌急躁，合作易生虚火。",
		Strategy:    "先正其心，后行其事。遇事多退一步，求财宜稳。",
	},
	{
		Stem: bazi.StemYi, Keywords: "柔顺、灵活",
		Nature:      "宛如春风细柳，极具韧性。赤马之年，利于展现巧思，但要防范小人夺光。",
		Cultivation: "柔中寓刚",
		RiskTip:     "灵感虽多，但落地难。偏财易进易出。",
		Strategy:    "专注正业，莫贪横财。借贵人之力，行稳致远。",
	},
	{
		Stem: bazi.StemBing, Keywords: "热情、光明",
		Nature:      "如烈日当空。流年值丙午，火气叠叠，最需调候，切莫因狂热误事。",
		Cultivation: "明哲保身",
		RiskTip:     "火过旺则脆，情绪易失控，容易招惹非议。",
		Strategy:    "以水克火，多听取反对意见。保持冷静是第一要务。",
	},
	{
		Stem: bazi.StemDing, Keywords: "细腻、执着",
		Nature:      "如灯火微光。丙午年火旺相助，才华得以显现，但需防范内耗过重。",
		Cultivation: "内敛神光",
		RiskTip:     "事务繁杂，节奏易乱。注意身体劳损。",
		Strategy:    "劳逸结合，守住内心一点真明，不随外界起舞。",
	},
	{
		Stem: bazi.StemWu, Keywords: "厚重、守信",
		Nature:      "如高山厚土。火生土旺，今年是您承载重任之时，利于确立威信。",
		Cultivation: "诚而有信",
		RiskTip:     "过于固执容易错失变革机会。合作需防被动。",
		Strategy:    "适当变通，顺应离火之势。多接纳新事物。",
	},
	{
		Stem: bazi.StemJi, Keywords: "包容、周全",
		Nature:      "如沃野良田。火燥土焦，今年需注意情绪舒缓，别让自己太紧绷。",
		Cultivation: "和合共生",
		RiskTip:     "琐事缠身，容易感到疲惫。脾胃需多关照。",
		Strategy:    "饮食起居宜清淡。简化社交，专注核心目标。",
	},
	{
		Stem: bazi.StemGeng, Keywords: "刚毅、果决",
		Nature:      "如精钢利刃。流年午火炼金，是磨砺成器之年，辛苦但有所成。",
		Cultivation: "大器晚成",
		RiskTip:     "压力骤增，容易硬碰硬。言语易伤人。",
		Strategy:    "柔和处事。将压力转化为动力，借火炼金。",
	},
	{
		Stem: bazi.StemXin, Keywords: "清雅、敏锐",
		Nature:      "如首饰明珠。丙午火旺克金，今年需低调藏锋，避开冲突。",
		Cultivation: "清净无为",
		RiskTip:     "感情波折较多，容易产生误解。职场宜避嫌。",
		Strategy:    "提升内功，莫争一时长短。清者自清。",
	},
	{
		Stem: bazi.StemRen, Keywords: "博大、洒脱",
		Nature:      "如江河湖海。水火既济，今年是您智慧激发的巅峰，利于跨界。",
		Cultivation: "智圆行方",
		RiskTip:     "水火相激，变动极大。投资需格外谨慎。",
		Strategy:    "设定止损。保持专注，不被浮华所惑。",
	},
	{
		Stem: bazi.StemGui, Keywords: "聪慧、润物",
		Nature:      "如雨露之水。丙午大火之年，水气易干，需多寻找精神滋养。",
		Cultivation: "上善若水",
		RiskTip:     "精力分散，财来财去。人情开支较大。",
		Strategy:    "量入为出。多亲近自然，保持心境温润。",
	},
}

var zodiacCards = [bazi.ZodiacCount]ZodiacCard{
	{Zodiac: bazi.Rat, Title: "守心待时", Rating: 2, Tags: []string{"子午相冲", "宜静"}, Description: "流年子午相冲，火水未济。易道建议：心定如山，守正出奇。"},
	{Zodiac: bazi.Ox, Title: "稳扎稳打", Rating: 3, Tags: []string{"丑午相害", "谨言"}, Description: "流年丑午相害，琐碎杂务多。易道建议：处乱不惊，步步为营。"},
	{Zodiac: bazi.Tiger, Title: "借势登高", Rating: 4, Tags: []string{"寅午相合", "机遇"}, Description: "流年寅午相合，木火通明。易道建议：抓住契机，顺势而上。"},
	{Zodiac: bazi.Rabbit, Title: "和乐且湛", Rating: 5, Tags: []string{"吉星高照", "贵人"}, Description: "流年天喜照耀，喜庆盈门。易道建议：广结善缘，和气生财。"},
	{Zodiac: bazi.Dragon, Title: "潜龙在渊", Rating: 3, Tags: []string{"平稳蓄势", "中庸"}, Description: "流年气场趋稳，波澜不惊。易道建议：静心思变，厚积薄发。"},
	{Zodiac: bazi.Snake, Title: "奋翼而起", Rating: 4, Tags: []string{"巳午同气", "晋升"}, Description: "流年火气充盈，贵人暗助。易道建议：敢于突破，必有所成。"},
	{Zodiac: bazi.Horse, Title: "修心化劫", Rating: 2, Tags: []string{"本命太岁", "自省"}, Description: "值年太岁，午午自刑。易道建议：收敛心性，不争为赢。"},
	{Zodiac: bazi.Goat, Title: "顺水推舟", Rating: 5, Tags: []string{"午未六合", "圆满"}, Description: "流年六合生辉，万事亨通。易道建议：把握良机，多行善事。"},
	{Zodiac: bazi.Monkey, Title: "动中求胜", Rating: 3, Tags: []string{"驿马动能", "远行"}, Description: "流年驿马星动，动则有机。易道建议：跨界求索，行者无疆。"},
	{Zodiac: bazi.Rooster, Title: "贵人引路", Rating: 4, Tags: []string{"红鸾心动", "人和"}, Description: "流年红鸾入命，人缘极佳。易道建议：真诚待人，必获回报。"},
	{Zodiac: bazi.Dog, Title: "慧心独具", Rating: 4, Tags: []string{"戌午相合", "睿智"}, Description: "流年三合入命，才智迸发。易道建议：深研内功，智慧立身。"},
	{Zodiac: bazi.Pig, Title: "否极泰来", Rating: 4, Tags: []string{"运势回暖", "稳健"}, Description: "流年正财入库，家宅安宁。易道建议：知足常乐，稳步前行。"},
}

var zodiacSecrets = [bazi.ZodiacCount]string{
	bazi.Rat:     "子午相冲，水火激荡。今年变动极大，易有远行、搬迁或职位变动，宜动不宜静。",
	bazi.Ox:      "丑午相害，易生琐碎。需防小人是非，凡事留有余地，莫因小失大。",
	bazi.Tiger:   "寅午半合，火局助势。贵人运强，利于合作共赢，事业可更上一层楼。",
	bazi.Rabbit:  "卯木生火，顺势而为。虽有消耗，但能得赏识，利于名声传播。",
	bazi.Dragon:  "龙马精神，气场相生。状态稳健，利于按部就班推进长期计划。",
	bazi.Snake:   "巳午同气，火势更旺。需注意情绪管理，避免因冲动而坏事。",
	bazi.Horse:   "值年太岁，午午自刑。易陷入自我纠结，需修心养性，放过自己。",
	bazi.Goat:    "午未六合，日月生辉。运势顺遂，人际和谐，是拓展人脉的绝佳年份。",
	bazi.Monkey:  "火克金金，压力虽大但能炼金。动中求财，适合出差或开拓新市场。",
	bazi.Rooster: "红鸾星动，桃花灿烂。利于社交、演艺及情感发展，但也需防烂桃花。",
	bazi.Dog:     "戌午半合，火库收纳。才华得以沉淀转化，利于幕后策划或资产管理。",
	bazi.Pig:     "暗合贵人，绝处逢生。表面平淡实则暗藏生机，遇困难自有解救之道。",
}

var elementOutlooks = [bazi.ElementCount]ElementOutlook{
	bazi.Wood: {
		Title:       "木火通明 · 泄秀之年",
		Description: "流年丙午，火气鼎盛。木生火为“食伤”，主才华外露、思维活跃。然火多木焚，需防精力透支。此年是“输出”之年，宜创作、表达，忌盲目扩张。",
	},
	bazi.Fire: {
		Title:       "烈火烹油 · 比劫争雄",
		Description: "流年丙午，与日主同气。两火相见，光芒万丈亦伴随激烈竞争。此年是“博弈”之年，机遇与挑战并存，需防急躁冲动，宜抱团取暖，忌单打独斗。",
	},
	bazi.Earth: {
		Title:       "火炎土燥 · 印星过旺",
		Description: "流年丙午，火生土为“印星”。火势太旺则土焦，虽有贵人扶持、资源涌入，但易感压抑焦虑。此年是“沉淀”之年，宜学习、进修，忌固执己见。",
	},
	bazi.Metal: {
		Title:       "火炼真金 · 官杀攻身",
		Description: "流年丙午，火克金为“官杀”。丙火猛烈，金受克制，压力剧增，亦是成器之时。此年是“磨砺”之年，宜承担重任、改革，忌正面硬刚。",
	},
	bazi.Water: {
		Title:       "水火既济 · 财星高照",
		Description: "流年丙午，水克火为“财星”。水火相激，动荡中藏巨大机会。离火大运，财源滚滚但极不稳定。此年是“逐鹿”之年，宜求财、跨界，忌贪得无厌。",
	},
}

var tenGodAdvice = [relation.LabelCount]string{
	relation.Companion:        "流年逢比肩，自我意识增强，凡事宜自立自强。易道建议：稳扎稳打，切莫轻信旁人，独立方能破局。",
	relation.RobWealth:        "流年逢劫财，需防意气用事导致钱财耗散。易道建议：谨言慎行，以静制动，避免风险投资。",
	relation.EatingGod:        "流年逢食神，乃吐秀之年，心情舒畅，利于文化创作。易道建议：保持温和，展现才干，机遇自来。",
	relation.HurtingOfficer:   "流年逢伤官，才气纵横但也伴随口舌之争。易道建议：收敛锋芒，将能量转化为创造，而非对抗。",
	relation.IndirectWealth:   "流年逢偏财，意外之机遇增多，思维变幻。易道建议：见好就收，切莫贪婪，离火之年守正为要。",
	relation.DirectWealth:     "流年逢正财，事业步入稳健轨道，努力必有回响。易道建议：长远布局，深耕本业，积微成著。",
	relation.SevenKillings:    "流年逢七杀，压力与转折共生，考验意志。易道建议：保持高度警觉，在变动中寻生机，退即是进。",
	relation.DirectOfficer:    "流年逢正官，利于名望提升，受人敬重。易道建议：自律正直，确立个人口碑，正道坦途。",
	relation.IndirectResource: "流年逢偏印，利于钻研深度学问或玄奥知识。易道建议：疏解内心，多与智者交流，化空想为行力。",
	relation.DirectResource:   "流年逢正印，贵人扶持，长辈眷顾，心境安稳。易道建议：静心进修，以厚德承载流年波动。",
}

// TenGodAdvice returns the focus-year commentary for a Ten Gods label.
func TenGodAdvice(l relation.Label) string {
	return tenGodAdvice[l]
}
