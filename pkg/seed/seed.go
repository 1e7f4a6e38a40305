// Package seed holds the records a fresh phrasebook is populated with.
package seed

import (
	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/profile"
)

// Profiles returns the default recipients for a first run.
func Profiles() []*profile.Profile {
	return []*profile.Profile{
		{
			ID:              "léna",
			DisplayName:     "Léna",
			MainTranslation: "蕾娜",
			Image:           "https://placehold.co/64x64/f8b4b4/333?text=L",
			Birthdate:       "2015-06-29",
			Timezone:        "Asia/Shanghai",
			Nicknames: []profile.Nickname{
				{ID: "star", Display: "Star", BaseValue: "my star", TargetValue: "我的小星星"},
			},
		},
		{
			ID:              "leelou",
			DisplayName:     "Leelou",
			MainTranslation: "理露",
			Image:           "https://placehold.co/64x64/b4d2f8/333?text=S",
			Birthdate:       "2013-09-11",
			Timezone:        "Asia/Shanghai",
			Nicknames:       []profile.Nickname{},
		},
	}
}

// Categories returns the default phrase categories for a first run.
func Categories() []*category.Category {
	return []*category.Category{
		{
			ID: "greetings", Title: "Greetings", Order: 0,
			Phrases: []category.Phrase{
				{ID: "greet1", Base: "Good morning {name}, how are you today?", Target: "早上好 {name}，你今天过得怎么样？"},
				{ID: "greet2", Base: "Good night {name}, sweet dreams.", Target: "晚安 {name}，做个好梦。"},
				{ID: "greet3", Base: "Have a wonderful day, {name}!", Target: "祝你今天过得愉快，{name}！"},
			},
		},
		{
			ID: "questions", Title: "Questions", Order: 1,
			Phrases: []category.Phrase{
				{ID: "quest1", Base: "Did you eat well, {name}?", Target: "{name}，你吃得好吗？"},
				{ID: "quest2", Base: "When are you coming home, {name}?", Target: "你什么时候回家，{name}？"},
				{ID: "quest3", Base: "How was your day, {name}?", Target: "{name}，你今天过得怎么样？"},
				{ID: "quest4", Base: "Are you feeling okay, {name}?", Target: "{name}，你感觉还好吗？"},
			},
		},
		{
			ID: "affection", Title: "Affection", Order: 2,
			Phrases: []category.Phrase{
				{ID: "aff1", Base: "I'm thinking of you, {name}.", Target: "我在想你，{name}。"},
				{ID: "aff2", Base: "I love you, {name}.", Target: "我爱你，{name}。"},
				{ID: "aff3", Base: "I miss you so much, {name}.", Target: "我很想你，{name}。"},
				{ID: "aff4", Base: "You make me so proud, {name}.", Target: "你让我很骄傲，{name}。"},
			},
		},
		{
			ID: "school", Title: "School", Order: 3,
			Phrases: []category.Phrase{
				{ID: "school1", Base: "Did you finish your homework, {name}?", Target: "{name}，你做完作业了吗？"},
				{ID: "school2", Base: "Good luck with your test today, {name}!", Target: "{name}，祝你今天考试顺利！"},
				{ID: "school3", Base: "How was school today, {name}?", Target: "{name}，今天上学怎么样？"},
				{ID: "school4", Base: "Don't forget to pack your backpack, {name}.", Target: "{name}，别忘了收拾书包。"},
				{ID: "school5", Base: "Study hard, {name}. I believe in you!", Target: "好好学习，{name}。我相信你！"},
			},
		},
		{
			ID: "sports", Title: "Sports", Order: 4,
			Phrases: []category.Phrase{
				{ID: "sport1", Base: "Good luck at practice today, {name}!", Target: "{name}，祝你今天训练顺利！"},
				{ID: "sport2", Base: "How was your game, {name}?", Target: "{name}，你的比赛怎么样？"},
				{ID: "sport3", Base: "You played amazingly, {name}!", Target: "{name}，你表现得太棒了！"},
				{ID: "sport4", Base: "Don't forget your sports gear, {name}.", Target: "{name}，别忘了带运动装备。"},
				{ID: "sport5", Base: "Keep up the great work, {name}!", Target: "继续保持，{name}！"},
			},
		},
		{
			ID: "holidays", Title: "Holidays", Order: 5,
			Phrases: []category.Phrase{
				{ID: "holiday1", Base: "Enjoy your vacation, {name}!", Target: "{name}，享受你的假期！"},
				{ID: "holiday2", Base: "Are you having fun on your trip, {name}?", Target: "{name}，你旅行玩得开心吗？"},
				{ID: "holiday3", Base: "Take lots of photos, {name}!", Target: "{name}，多拍点照片！"},
				{ID: "holiday4", Base: "Rest well during the holidays, {name}.", Target: "{name}，假期要好好休息。"},
				{ID: "holiday5", Base: "Happy holidays, {name}!", Target: "{name}，节日快乐！"},
			},
		},
		{
			ID: "birthday", Title: "Birthday", Order: 6,
			Phrases: []category.Phrase{
				{ID: "birthday1", Base: "Happy birthday, {name}! Hope all your wishes come true!", Target: "生日快乐，{name}！希望你所有的愿望都能实现！"},
				{ID: "birthday2", Base: "Wishing you the happiest birthday, {name}!", Target: "祝你生日最快乐，{name}！"},
				{ID: "birthday3", Base: "Another year older and wiser, {name}!", Target: "又长大了一岁，{name}！"},
				{ID: "birthday4", Base: "Can't wait to celebrate with you, {name}!", Target: "迫不及待要和你一起庆祝，{name}！"},
				{ID: "birthday5", Base: "You're growing up so fast, {name}!", Target: "{name}，你长得太快了！"},
			},
		},
		{
			ID: "christmas", Title: "Christmas", Order: 7,
			Phrases: []category.Phrase{
				{ID: "christmas1", Base: "Merry Christmas, {name}!", Target: "圣诞快乐，{name}！"},
				{ID: "christmas2", Base: "Santa is coming soon, {name}!", Target: "{name}，圣诞老人就要来了！"},
				{ID: "christmas3", Base: "Have you been good this year, {name}?", Target: "{name}，你今年表现好吗？"},
				{ID: "christmas4", Base: "Can't wait to open presents with you, {name}!", Target: "迫不及待要和你一起拆礼物，{name}！"},
				{ID: "christmas5", Base: "The Christmas tree looks beautiful, {name}.", Target: "{name}，圣诞树真漂亮。"},
			},
		},
		{
			ID: "special-events", Title: "Special Events", Order: 8,
			Phrases: []category.Phrase{
				{ID: "special1", Base: "Happy New Year, {name}! This will be an amazing year!", Target: "新年快乐，{name}！这将是美好的一年！"},
				{ID: "special2", Base: "Congratulations on your achievement, {name}!", Target: "恭喜你取得成就，{name}！"},
				{ID: "special3", Base: "Today is a special day, {name}!", Target: "今天是特别的日子，{name}！"},
				{ID: "special4", Base: "You did something amazing today, {name}!", Target: "{name}，你今天做了了不起的事！"},
				{ID: "special5", Base: "Let's celebrate together, {name}!", Target: "我们一起庆祝吧，{name}！"},
				{ID: "special6", Base: "This moment is so precious, {name}.", Target: "这个时刻很珍贵，{name}。"},
			},
		},
	}
}
