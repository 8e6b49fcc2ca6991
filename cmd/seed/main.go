// Seeds a demo dataset: courses across all four streams, colleges using each
// of the three coordinate document shapes, and upcoming timeline events.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careerdisha/internal/model"
	"careerdisha/internal/repository"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "careerdisha"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	courses := repository.NewCourseRepo(db)
	colleges := repository.NewCollegeRepo(db)
	timeline := repository.NewTimelineRepo(db)

	for _, c := range seedCourses {
		course := c
		if err := courses.Create(ctx, &course); err != nil {
			log.Fatalf("Failed to seed course %q: %v", c.Course, err)
		}
	}
	log.Printf("Seeded %d courses", len(seedCourses))

	for _, c := range seedColleges {
		college := c
		if err := colleges.Create(ctx, &college); err != nil {
			log.Fatalf("Failed to seed college %q: %v", c.Name, err)
		}
	}
	log.Printf("Seeded %d colleges", len(seedColleges))

	for _, e := range seedEvents {
		event := e
		if err := timeline.Create(ctx, &event); err != nil {
			log.Fatalf("Failed to seed event %q: %v", e.Title, err)
		}
	}
	log.Printf("Seeded %d timeline events", len(seedEvents))
}

var seedCourses = []model.Course{
	{Course: "B.Tech Computer Science", Careers: []string{"Software Engineer", "Data Scientist"}, HigherStudies: []string{"M.Tech", "MBA"}},
	{Course: "B.Tech Mechanical Engineering", Careers: []string{"Design Engineer", "Production Manager"}, HigherStudies: []string{"M.Tech"}},
	{Course: "MBBS", Careers: []string{"Doctor", "Surgeon"}, HigherStudies: []string{"MD", "MS"}},
	{Course: "B.Sc Physics", Careers: []string{"Research Scientist", "Teacher"}, HigherStudies: []string{"M.Sc", "Ph.D"}},
	{Course: "BCA", Careers: []string{"Software Developer", "System Administrator"}, HigherStudies: []string{"MCA"}},
	{Course: "B.Com Honours", Careers: []string{"Accountant", "Banker"}, HigherStudies: []string{"M.Com", "MBA", "CA"}},
	{Course: "BBA", Careers: []string{"Business Manager", "Entrepreneur"}, HigherStudies: []string{"MBA"}},
	{Course: "CA Foundation", Careers: []string{"Chartered Accountant"}, HigherStudies: []string{"CA Intermediate"}},
	{Course: "B.A Psychology", Careers: []string{"Counsellor", "HR Specialist"}, HigherStudies: []string{"M.A", "M.Phil"}},
	{Course: "B.A English Literature", Careers: []string{"Writer", "Editor", "Teacher"}, HigherStudies: []string{"M.A"}},
	{Course: "BJMC", Careers: []string{"Journalist", "News Anchor"}, HigherStudies: []string{"MJMC"}},
	{Course: "LLB", Careers: []string{"Lawyer", "Legal Advisor"}, HigherStudies: []string{"LLM"}},
	{Course: "B.Voc Software Development", Careers: []string{"Web Developer"}, HigherStudies: []string{"M.Voc"}},
	{Course: "Polytechnic Diploma", Careers: []string{"Technician", "Junior Engineer"}, HigherStudies: []string{"B.Tech lateral entry"}},
	{Course: "Hotel Management Diploma", Careers: []string{"Hotel Manager", "Chef"}, HigherStudies: []string{"Advanced Diploma"}},
	{Course: "Science (PCM)", Careers: []string{"Engineer track"}, HigherStudies: []string{"B.Tech", "B.Sc"}},
	{Course: "Science (PCB)", Careers: []string{"Medical track"}, HigherStudies: []string{"MBBS", "B.Pharm"}},
	{Course: "Commerce with Mathematics", Careers: []string{"Finance track"}, HigherStudies: []string{"B.Com", "BBA"}},
}

func ptr(f float64) *float64 { return &f }

var seedColleges = []model.College{
	// Nested location.{lat,lng} shape
	{
		Name:       "Delhi Institute of Technology",
		City:       "Delhi",
		Location:   &model.GeoPoint{Lat: ptr(28.7041), Lng: ptr(77.1025)},
		Level:      model.CollegeLevelDegree,
		Courses:    []string{"B.Tech Computer Science", "B.Tech Mechanical Engineering", "BCA"},
		Facilities: []string{"Hostel", "Research Labs", "Placement Cell"},
	},
	// Top-level latitude/longitude shape
	{
		Name:       "Mumbai College of Commerce",
		City:       "Mumbai",
		Latitude:   ptr(19.0760),
		Longitude:  ptr(72.8777),
		Level:      model.CollegeLevelDegree,
		Courses:    []string{"B.Com Honours", "BBA", "CA Foundation"},
		Facilities: []string{"Library", "Auditorium"},
	},
	{
		Name:       "Pune Medical College",
		City:       "Pune",
		Latitude:   ptr(18.5204),
		Longitude:  ptr(73.8567),
		Level:      model.CollegeLevelDegree,
		Courses:    []string{"MBBS", "B.Sc Nursing"},
		Facilities: []string{"Teaching Hospital", "Hostel"},
	},
	// Top-level lat/lng shape
	{
		Name:       "Jaipur Arts and Law College",
		City:       "Jaipur",
		Lat:        ptr(26.9124),
		Lng:        ptr(75.7873),
		Level:      model.CollegeLevelDegree,
		Courses:    []string{"B.A Psychology", "B.A English Literature", "LLB"},
		Facilities: []string{"Moot Court", "Library"},
	},
	// No coordinates, no level: always compatible, sorts last in geo-ranking
	{
		Name:       "National Open University",
		City:       "Delhi",
		Courses:    []string{"B.A English Literature", "B.Com Honours", "BCA", "M.A", "M.Com"},
		Facilities: []string{"Distance Learning"},
	},
	{
		Name:       "Lucknow Polytechnic Institute",
		City:       "Lucknow",
		Lat:        ptr(26.8467),
		Lng:        ptr(80.9462),
		Level:      model.CollegeLevelAll,
		Courses:    []string{"Polytechnic Diploma", "B.Voc Software Development", "Hotel Management Diploma"},
		Facilities: []string{"Workshops", "Industry Tie-ups"},
	},
	{
		Name:       "Chennai Junior Science College",
		City:       "Chennai",
		Latitude:   ptr(13.0827),
		Longitude:  ptr(80.2707),
		Level:      model.CollegeLevelJunior,
		Courses:    []string{"Science (PCM)", "Science (PCB)", "Commerce with Mathematics"},
		Facilities: []string{"Labs", "Sports"},
	},
	{
		Name:       "Bengaluru Research University",
		City:       "Bengaluru",
		Latitude:   ptr(12.9716),
		Longitude:  ptr(77.5946),
		Level:      model.CollegeLevelUniversity,
		Courses:    []string{"M.Tech", "M.Sc", "Ph.D", "MBA"},
		Facilities: []string{"Research Labs", "Incubator"},
	},
}

var seedEvents = []model.TimelineEvent{
	{Title: "JEE Main Application Deadline", Date: daysFromNow(20), Type: model.EventAdmission},
	{Title: "NEET Admission Counselling Begins", Date: daysFromNow(35), Type: model.EventAdmission},
	{Title: "National Merit Scholarship Applications Open", Date: daysFromNow(10), Type: model.EventScholarship},
	{Title: "CLAT Registration Window", Date: daysFromNow(45), Type: model.EventAdmission},
	{Title: "CA Foundation Exam Registration", Date: daysFromNow(28), Type: model.EventAdmission},
	{Title: "Class 12 Board Exam Form Deadline", Date: daysFromNow(15), Type: model.EventAdmission},
	{Title: "ITI Apprenticeship Drive", Date: daysFromNow(50), Type: model.EventAdmission},
	{Title: "Postgraduate Fellowship Scholarship Deadline", Date: daysFromNow(60), Type: model.EventScholarship},
}

func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}
