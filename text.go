package main

import "github.com/Zachkp/microx-portfolio/internal/content"

var (
	AboutMe = `I love building software that's both **useful** and **fun**, and I'm always curious about how things work behind the scenes.
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
	different language, experimenting with tools, or solving tricky problems.

	When I'm not coding, you'll usually find me training Muay Thai, shooting pool with friends,
	or chasing down a new challenge outside the screen.`

	ProjectOne = `A terminal-based email client built in Go with fuzzyfinder capabilities
	using the Charmbracelet TUI framework and go-imap.`

	ProjectTwo = `A terminal-based music streaming application built in Go with an elegant TUI
	interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`

	ProjectThree = `A machine learning-powered web application that uses TF-IDF vectorization and cosine
	similarity to recommend games based on content analysis, featuring interactive data visualizations and
	real-time filtering by user reviews and ratings.`

	ProjectFour = `A responsive portfolio front-end written in Go and compiled to WebAssembly, with
	scroll-triggered animations, a filterable gallery and a self-testing contact form.`
)

var siteCopy = content.Copy{
	Name:  "Zach",
	About: AboutMe,
	Services: []content.Service{
		{Title: "Backend Services", Body: "APIs and data plumbing in Go."},
		{Title: "Terminal Tools", Body: "CLIs and TUIs people enjoy using."},
		{Title: "Web Front-ends", Body: "Fast, accessible pages."},
	},
	Stats: []content.Stat{
		{Label: "Projects", Count: 20},
		{Label: "Languages", Count: 6},
		{Label: "Years Coding", Count: 5},
	},
	Skills: []content.Skill{
		{Name: "Go", Percent: 90},
		{Name: "SQL", Percent: 75},
		{Name: "HTML & CSS", Percent: 80},
		{Name: "Python", Percent: 70},
	},
	Projects: []content.ProjectCopy{
		{
			Title:    "Terminal Mail",
			Category: "cli",
			Image:    "/images/mail.png",
			Summary:  ProjectOne,
		},
		{
			Title:    "Terminal Music",
			Category: "cli",
			Image:    "/images/music.png",
			Summary:  ProjectTwo,
		},
		{
			Title:    "Game Recommender",
			Category: "ml",
			Image:    "/images/games.png",
			Summary:  ProjectThree,
		},
		{
			Title:    "Portfolio",
			Category: "web",
			Image:    "/images/portfolio.png",
			Summary:  ProjectFour,
		},
	},
}
