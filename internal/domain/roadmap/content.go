package roadmap

func todo(names ...string) []Task {
	out := make([]Task, 0, len(names))
	for _, n := range names {
		out = append(out, Task{Name: n})
	}
	return out
}

func done(names ...string) []Task {
	out := todo(names...)
	for i := range out {
		out[i].IsCompleted = true
	}
	return out
}

var cannedRoadmaps = map[Category]func() Roadmap{
	CategoryMERN:        mernRoadmap,
	CategoryFrontend:    frontendRoadmap,
	CategoryBackend:     backendRoadmap,
	CategoryDataScience: dataScienceRoadmap,
	CategoryMobile:      mobileRoadmap,
	CategoryDevOps:      devOpsRoadmap,
	CategoryBeginner:    beginnerRoadmap,
}

func mernRoadmap() Roadmap {
	return Roadmap{
		Title:    "MERN Stack Developer Path",
		Summary:  "A comprehensive guide to becoming a full-stack developer using MongoDB, Express.js, React, and Node.js. This path focuses on building real-world applications from scratch.",
		Duration: "4-6 Months",
		Tree:     []string{"HTML/CSS", "JavaScript", "React", "Node.js", "Express", "MongoDB", "Deployment"},
		Modules: []Module{
			{
				ID: 1, Title: "Module 1: Web Fundamentals",
				Desc:   "Master the building blocks of the web before diving into frameworks.",
				Time:   "2-3 Weeks",
				Status: StatusCompleted,
				Tasks:  done("HTML5 Semantic Structure", "CSS3 Flexbox & Grid", "Responsive Design & Media Queries", "Git & GitHub Basics"),
				Skills: []string{"HTML", "CSS", "Git"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 2, Title: "Module 2: JavaScript Mastery",
				Desc:   "Deep dive into ES6+, async programming, and DOM manipulation.",
				Time:   "4 Weeks",
				Status: StatusInProgress,
				Tasks: append(done("ES6+ Features (Arrow fns, Destructuring)"),
					todo("Async/Await & Promises", "DOM Manipulation", "Fetch API & JSON")...),
				Skills: []string{"JavaScript"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 3, Title: "Module 3: Frontend with React",
				Desc:   "Build interactive UIs with the most popular library.",
				Time:   "6 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Components & Props", "Hooks (useState, useEffect)", "Context API & State Management", "React Router"),
				Skills: []string{"React"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 4, Title: "Module 4: Backend Engineering",
				Desc:   "Server-side logic with Node.js and Express.",
				Time:   "5 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Node.js Runtime Basics", "Express Routing & Middleware", "REST API Design", "Authentication (JWT)"),
				Skills: []string{"Node.js", "Express", "MongoDB"}, Difficulty: DifficultyIntermediate,
			},
		},
		Projects: []Project{
			{Title: "Task Management App", Difficulty: DifficultyBeginner, Desc: "A simple CRUD app with local storage to master React state."},
			{Title: "E-Commerce Dashboard", Difficulty: DifficultyIntermediate, Desc: "Full-stack shop with cart, payments, and admin panel."},
			{Title: "Real-time Chat App", Difficulty: DifficultyAdvanced, Desc: "WebSockets implementation using Socket.io and MERN."},
		},
		Mistakes: []string{
			"Don't spend too much time on CSS frameworks before learning raw CSS.",
			"Avoid 'Tutorial Hell' - build projects without following a video step-by-step.",
			"Don't ignore TypeScript - it's industry standard now.",
		},
		Tips: []string{
			"Deploy every project, even the small ones.",
			"Read the official React and Express docs before third-party tutorials.",
			"Keep a dev log of what you learned each week.",
		},
		Advice: "Consistency is key. Code every day, even if it's just for 30 minutes. Focus on building things that solve real problems, not just copying tutorials.",
	}
}

func frontendRoadmap() Roadmap {
	return Roadmap{
		Title:    "Frontend Developer Path",
		Summary:  "Go from static pages to production-grade React applications with a strong grip on accessibility, performance and modern tooling.",
		Duration: "3-5 Months",
		Tree:     []string{"HTML/CSS", "JavaScript", "TypeScript", "React", "State Management", "Testing", "Performance"},
		Modules: []Module{
			{
				ID: 1, Title: "Module 1: Semantic HTML & Modern CSS",
				Desc:   "Layouts, accessibility and responsive design without frameworks.",
				Time:   "3 Weeks",
				Status: StatusCompleted,
				Tasks:  done("Semantic Elements & ARIA", "Flexbox & Grid Layouts", "CSS Custom Properties", "Mobile-first Media Queries"),
				Skills: []string{"HTML", "CSS"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 2, Title: "Module 2: JavaScript & TypeScript",
				Desc:   "Language fundamentals, the event loop and static typing.",
				Time:   "4 Weeks",
				Status: StatusInProgress,
				Tasks: append(done("Closures & Scope"),
					todo("Event Loop & Async", "TypeScript Types & Generics", "Modules & Bundlers")...),
				Skills: []string{"JavaScript", "TypeScript"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 3, Title: "Module 3: React in Depth",
				Desc:   "Component design, hooks and client-side routing.",
				Time:   "5 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Component Composition", "Custom Hooks", "Redux Toolkit / Zustand", "React Router & Data Loading"),
				Skills: []string{"React", "Redux"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 4, Title: "Module 4: Quality & Performance",
				Desc:   "Test, measure and ship fast interfaces.",
				Time:   "3 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Unit Tests with Vitest", "Component Tests with Testing Library", "Core Web Vitals", "Code Splitting & Lazy Loading"),
				Skills: []string{"Testing", "Web Performance"}, Difficulty: DifficultyAdvanced,
			},
		},
		Projects: []Project{
			{Title: "Personal Portfolio", Difficulty: DifficultyBeginner, Desc: "Responsive, accessible portfolio site deployed on a custom domain."},
			{Title: "Movie Discovery App", Difficulty: DifficultyIntermediate, Desc: "React app consuming a public API with search, filters and pagination."},
			{Title: "Design System Library", Difficulty: DifficultyAdvanced, Desc: "Reusable, documented and tested component library published to npm."},
		},
		Mistakes: []string{
			"Reaching for a UI kit before understanding the box model.",
			"Putting all state in a global store.",
			"Skipping accessibility until the end.",
		},
		Tips: []string{
			"Rebuild small UIs you use every day.",
			"Profile before optimizing.",
			"Learn the browser devtools properly.",
		},
		Advice: "Great frontend engineers care about users first. Ship small, measure, and iterate.",
	}
}

func backendRoadmap() Roadmap {
	return Roadmap{
		Title:    "Backend Developer Path",
		Summary:  "Learn to design, build and operate reliable APIs with Node.js, relational databases and caching.",
		Duration: "4-6 Months",
		Tree:     []string{"JavaScript", "Node.js", "HTTP & REST", "SQL", "Caching", "Auth", "Deployment"},
		Modules: []Module{
			{
				ID: 1, Title: "Module 1: Runtime & Language",
				Desc:   "Node.js internals, modules and asynchronous I/O.",
				Time:   "3 Weeks",
				Status: StatusCompleted,
				Tasks:  done("Node.js Event Loop", "npm & Package Management", "Streams & Buffers", "Error Handling Patterns"),
				Skills: []string{"Node.js"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 2, Title: "Module 2: APIs",
				Desc:   "Design HTTP APIs that are easy to consume and evolve.",
				Time:   "4 Weeks",
				Status: StatusInProgress,
				Tasks: append(done("REST Resource Modelling"),
					todo("Express Middleware", "Validation & Error Responses", "OpenAPI Documentation")...),
				Skills: []string{"Express", "REST"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 3, Title: "Module 3: Data",
				Desc:   "Relational modelling, indexing and transactions.",
				Time:   "5 Weeks",
				Status: StatusLocked,
				Tasks:  todo("SQL Joins & Aggregations", "Schema Design & Migrations", "Indexes & Query Plans", "Redis Caching"),
				Skills: []string{"PostgreSQL", "SQL", "Redis"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 4, Title: "Module 4: Production",
				Desc:   "Security, observability and deployment.",
				Time:   "4 Weeks",
				Status: StatusLocked,
				Tasks:  todo("JWT & Session Auth", "Rate Limiting", "Structured Logging", "Docker Deployment"),
				Skills: []string{"Docker", "Security"}, Difficulty: DifficultyAdvanced,
			},
		},
		Projects: []Project{
			{Title: "URL Shortener", Difficulty: DifficultyBeginner, Desc: "REST API with persistence and redirect analytics."},
			{Title: "Job Board API", Difficulty: DifficultyIntermediate, Desc: "Multi-role API with auth, search and pagination."},
			{Title: "Event-driven Order Service", Difficulty: DifficultyAdvanced, Desc: "Queue-backed service with retries and idempotent handlers."},
		},
		Mistakes: []string{
			"Ignoring database indexes until things get slow.",
			"Returning raw internal errors to clients.",
			"Storing secrets in source control.",
		},
		Tips: []string{
			"Write the API contract before the handler.",
			"Log with request ids from day one.",
			"Load test before you launch.",
		},
		Advice: "Reliability beats cleverness. Build boring, well-tested services and learn how they fail.",
	}
}

func dataScienceRoadmap() Roadmap {
	return Roadmap{
		Title:    "Data Science Path",
		Summary:  "Build a foundation in Python, statistics and machine learning, then apply it to real datasets end to end.",
		Duration: "5-7 Months",
		Tree:     []string{"Python", "NumPy/Pandas", "Statistics", "Visualization", "Machine Learning", "Deep Learning", "MLOps"},
		Modules: []Module{
			{
				ID: 1, Title: "Module 1: Python for Data",
				Desc:   "Python fundamentals and the scientific stack.",
				Time:   "3 Weeks",
				Status: StatusCompleted,
				Tasks:  done("Python Syntax & Data Structures", "Jupyter Notebooks", "NumPy Arrays", "Pandas DataFrames"),
				Skills: []string{"Python", "Pandas"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 2, Title: "Module 2: Statistics & Visualization",
				Desc:   "Describe data honestly and communicate findings.",
				Time:   "4 Weeks",
				Status: StatusInProgress,
				Tasks: append(done("Descriptive Statistics"),
					todo("Probability Distributions", "Hypothesis Testing", "Matplotlib & Seaborn")...),
				Skills: []string{"Statistics"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 3, Title: "Module 3: Machine Learning",
				Desc:   "Supervised and unsupervised learning with scikit-learn.",
				Time:   "6 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Regression & Classification", "Feature Engineering", "Model Evaluation & Cross-validation", "Clustering"),
				Skills: []string{"Machine Learning", "scikit-learn"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 4, Title: "Module 4: Deep Learning & Deployment",
				Desc:   "Neural networks and shipping models.",
				Time:   "6 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Neural Network Basics", "PyTorch Fundamentals", "Model Serving APIs", "Experiment Tracking"),
				Skills: []string{"PyTorch", "MLOps"}, Difficulty: DifficultyAdvanced,
			},
		},
		Projects: []Project{
			{Title: "Exploratory Data Analysis Report", Difficulty: DifficultyBeginner, Desc: "Clean and analyze a public dataset and publish a notebook."},
			{Title: "House Price Predictor", Difficulty: DifficultyIntermediate, Desc: "Regression model with feature engineering and evaluation."},
			{Title: "Image Classifier Service", Difficulty: DifficultyAdvanced, Desc: "Train a CNN and serve predictions behind an API."},
		},
		Mistakes: []string{
			"Jumping into deep learning before understanding statistics.",
			"Leaking test data into training.",
			"Reporting accuracy on imbalanced datasets.",
		},
		Tips: []string{
			"Start every project with a question, not a model.",
			"Version your data as well as your code.",
			"Kaggle notebooks are great for reading other people's approaches.",
		},
		Advice: "Data science is mostly data. Get comfortable cleaning, questioning and visualizing it before chasing fancy models.",
	}
}

func mobileRoadmap() Roadmap {
	return Roadmap{
		Title:    "Mobile Developer Path",
		Summary:  "Build native-quality Android apps with Kotlin and learn the cross-platform options used in industry.",
		Duration: "4-6 Months",
		Tree:     []string{"Kotlin", "Android Basics", "Jetpack Compose", "Networking", "Persistence", "React Native", "Play Store"},
		Modules: []Module{
			{
				ID: 1, Title: "Module 1: Kotlin Fundamentals",
				Desc:   "The language of modern Android.",
				Time:   "3 Weeks",
				Status: StatusCompleted,
				Tasks:  done("Kotlin Syntax & Null Safety", "Collections & Lambdas", "Coroutines Basics", "Android Studio Setup"),
				Skills: []string{"Kotlin"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 2, Title: "Module 2: Android UI",
				Desc:   "Declarative UI with Jetpack Compose.",
				Time:   "4 Weeks",
				Status: StatusInProgress,
				Tasks: append(done("Activities & Lifecycle"),
					todo("Compose Layouts", "State & ViewModel", "Navigation")...),
				Skills: []string{"Android", "Jetpack Compose"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 3, Title: "Module 3: Data & Networking",
				Desc:   "Talk to APIs and keep data offline.",
				Time:   "4 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Retrofit & REST", "Room Database", "Offline-first Sync", "Dependency Injection with Hilt"),
				Skills: []string{"REST", "SQLite"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 4, Title: "Module 4: Cross-platform & Release",
				Desc:   "React Native basics and publishing to the store.",
				Time:   "4 Weeks",
				Status: StatusLocked,
				Tasks:  todo("React Native Components", "Push Notifications", "App Signing", "Play Store Release"),
				Skills: []string{"React Native", "iOS"}, Difficulty: DifficultyAdvanced,
			},
		},
		Projects: []Project{
			{Title: "Habit Tracker", Difficulty: DifficultyBeginner, Desc: "Local-only app with Compose UI and Room storage."},
			{Title: "News Reader", Difficulty: DifficultyIntermediate, Desc: "API-backed reader with offline caching and pagination."},
			{Title: "Ride Sharing Prototype", Difficulty: DifficultyAdvanced, Desc: "Maps, live location and push notifications."},
		},
		Mistakes: []string{
			"Doing network calls on the main thread.",
			"Ignoring different screen sizes.",
			"Never testing on a real device.",
		},
		Tips: []string{
			"Follow the official Android architecture guide.",
			"Keep screens stateless and push state to view models.",
			"Publish early to learn the release process.",
		},
		Advice: "Users judge apps in seconds. Polish the core flow, keep it fast, and ship updates often.",
	}
}

func devOpsRoadmap() Roadmap {
	return Roadmap{
		Title:    "DevOps & Cloud Engineer Path",
		Summary:  "Automate the path from commit to production with Linux, containers, CI/CD and cloud infrastructure as code.",
		Duration: "4-6 Months",
		Tree:     []string{"Linux", "Networking", "Git", "Docker", "CI/CD", "Kubernetes", "Terraform", "Cloud"},
		Modules: []Module{
			{
				ID: 1, Title: "Module 1: Linux & Networking",
				Desc:   "The operating system and protocols everything runs on.",
				Time:   "3 Weeks",
				Status: StatusCompleted,
				Tasks:  done("Shell & Bash Scripting", "Processes & Permissions", "TCP/IP & DNS", "SSH & Remote Access"),
				Skills: []string{"Linux", "Bash"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 2, Title: "Module 2: Containers",
				Desc:   "Package and run applications consistently.",
				Time:   "3 Weeks",
				Status: StatusInProgress,
				Tasks: append(done("Docker Images & Containers"),
					todo("Dockerfile Best Practices", "Docker Compose", "Container Registries")...),
				Skills: []string{"Docker"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 3, Title: "Module 3: Delivery Pipelines",
				Desc:   "Build, test and deploy on every commit.",
				Time:   "4 Weeks",
				Status: StatusLocked,
				Tasks:  todo("GitHub Actions", "Automated Testing Stages", "Blue/Green & Canary Deploys", "Secrets Management"),
				Skills: []string{"CI/CD"}, Difficulty: DifficultyIntermediate,
			},
			{
				ID: 4, Title: "Module 4: Orchestration & Cloud",
				Desc:   "Run workloads at scale on managed infrastructure.",
				Time:   "6 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Kubernetes Workloads & Services", "Terraform Basics", "AWS Core Services", "Monitoring with Prometheus & Grafana"),
				Skills: []string{"Kubernetes", "Terraform", "AWS"}, Difficulty: DifficultyAdvanced,
			},
		},
		Projects: []Project{
			{Title: "Dockerized Web App", Difficulty: DifficultyBeginner, Desc: "Containerize an app with a database using Compose."},
			{Title: "CI/CD Pipeline", Difficulty: DifficultyIntermediate, Desc: "Pipeline that tests, builds and deploys on merge."},
			{Title: "Kubernetes Platform", Difficulty: DifficultyAdvanced, Desc: "Terraform-provisioned cluster with monitoring and autoscaling."},
		},
		Mistakes: []string{
			"Learning Kubernetes before Docker and Linux.",
			"Clicking through cloud consoles instead of writing code.",
			"Leaving cloud resources running and paying for them.",
		},
		Tips: []string{
			"Automate anything you do twice.",
			"Set billing alerts on every cloud account.",
			"Read post-mortems from large companies.",
		},
		Advice: "DevOps is a culture of ownership. Understand the systems you automate and make failure cheap to recover from.",
	}
}

func beginnerRoadmap() Roadmap {
	return Roadmap{
		Title:    "First Year CS Student Path",
		Summary:  "A gentle start: programming fundamentals, problem solving and your first projects, without rushing into frameworks.",
		Duration: "6-12 Months",
		Tree:     []string{"Programming Basics", "Problem Solving", "DSA", "Git", "Web Basics", "First Projects"},
		Modules: []Module{
			{
				ID: 1, Title: "Module 1: Programming Fundamentals",
				Desc:   "Pick one language and learn it well.",
				Time:   "6 Weeks",
				Status: StatusCompleted,
				Tasks:  done("Variables, Loops & Conditionals", "Functions", "Arrays & Strings", "Basic Debugging"),
				Skills: []string{"C++", "Python"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 2, Title: "Module 2: Problem Solving",
				Desc:   "Build the habit of solving problems daily.",
				Time:   "8 Weeks",
				Status: StatusInProgress,
				Tasks: append(done("Easy LeetCode Problems"),
					todo("Time & Space Complexity", "Recursion", "Sorting & Searching")...),
				Skills: []string{"DSA", "Problem Solving"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 3, Title: "Module 3: Tools of the Trade",
				Desc:   "Version control and the command line.",
				Time:   "2 Weeks",
				Status: StatusLocked,
				Tasks:  todo("Terminal Basics", "Git Commits & Branches", "GitHub Profile", "Markdown READMEs"),
				Skills: []string{"Git"}, Difficulty: DifficultyBeginner,
			},
			{
				ID: 4, Title: "Module 4: Build Something",
				Desc:   "Apply what you learned to small, complete projects.",
				Time:   "6 Weeks",
				Status: StatusLocked,
				Tasks:  todo("HTML & CSS Basics", "JavaScript Basics", "Deploy a Static Site", "Join a Hackathon"),
				Skills: []string{"HTML", "CSS", "JavaScript"}, Difficulty: DifficultyIntermediate,
			},
		},
		Projects: []Project{
			{Title: "Calculator CLI", Difficulty: DifficultyBeginner, Desc: "Command-line calculator with input validation."},
			{Title: "Personal Website", Difficulty: DifficultyBeginner, Desc: "Static site about you, hosted on GitHub Pages."},
			{Title: "Quiz Game", Difficulty: DifficultyIntermediate, Desc: "Browser quiz with scoring and a question bank."},
		},
		Mistakes: []string{
			"Hopping between languages every week.",
			"Only watching tutorials without writing code.",
			"Comparing your progress with others.",
		},
		Tips: []string{
			"Solve one problem a day.",
			"Push everything to GitHub.",
			"Find a study group or a mentor.",
		},
		Advice: "Fundamentals compound. A solid first year makes every later technology easier to learn.",
	}
}

func genericRoadmap(goal string) Roadmap {
	return Roadmap{
		Title:    "Custom Path: " + goal,
		Summary:  "A personalized learning path for your goal: \"" + goal + "\". Start with the fundamentals, practice deliberately and build projects that prove your skills.",
		Duration: "3-6 Months",
		Tree:     []string{"Fundamentals", "Core Concepts", "Practice", "Projects", "Portfolio"},
		Modules: []Module{
			{
				ID: 1, Title: "Module 1: Foundations",
				Desc:       "Learn the core vocabulary and concepts of the field.",
				Time:       "3 Weeks",
				Status:     StatusInProgress,
				Tasks:      todo("Identify key concepts", "Pick a primary learning resource", "Set up your tools"),
				Difficulty: DifficultyBeginner,
			},
			{
				ID: 2, Title: "Module 2: Deliberate Practice",
				Desc:       "Turn concepts into skills through focused exercises.",
				Time:       "4 Weeks",
				Status:     StatusLocked,
				Tasks:      todo("Daily exercises", "Weekly review", "Ask for feedback"),
				Difficulty: DifficultyIntermediate,
			},
			{
				ID: 3, Title: "Module 3: Applied Projects",
				Desc:       "Build and share work that demonstrates your progress.",
				Time:       "5 Weeks",
				Status:     StatusLocked,
				Tasks:      todo("Plan a capstone project", "Build an MVP", "Publish and document it"),
				Difficulty: DifficultyAdvanced,
			},
		},
		Projects: []Project{
			{Title: "Starter Project", Difficulty: DifficultyBeginner, Desc: "A small project that covers the fundamentals."},
			{Title: "Portfolio Project", Difficulty: DifficultyIntermediate, Desc: "A polished project you can show to others."},
			{Title: "Capstone", Difficulty: DifficultyAdvanced, Desc: "An ambitious project that ties everything together."},
		},
		Mistakes: []string{
			"Trying to learn everything at once.",
			"Skipping fundamentals.",
		},
		Tips: []string{
			"Set weekly goals.",
			"Teach what you learn.",
		},
		Advice: "Stay curious and consistent. Small daily progress beats occasional bursts of effort.",
	}
}
