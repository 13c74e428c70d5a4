// Package stats derives dashboard counts from application and posting
// collections. All functions are pure.
package stats

import "github.com/careerconnect/backend/internal/model"

type ApplicationCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewing int `json:"reviewing"`
	Interview int `json:"interview"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
}

// CountApplications partitions applications by status. Total always equals
// the sum of the five buckets.
func CountApplications(apps []model.Application) ApplicationCounts {
	c := ApplicationCounts{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusReviewing:
			c.Reviewing++
		case model.StatusInterview:
			c.Interview++
		case model.StatusAccepted:
			c.Accepted++
		case model.StatusRejected:
			c.Rejected++
		}
	}
	return c
}

type CompanyJobCounts struct {
	ActiveJobs        int `json:"active_jobs"`
	TotalApplications int `json:"total_applications"`
}

// CountCompanyJobs summarizes a company's postings. Callers must supply jobs
// with their applications loaded; a posting without any counts as zero.
func CountCompanyJobs(jobs []model.Job) CompanyJobCounts {
	var c CompanyJobCounts
	for _, j := range jobs {
		if j.IsActive {
			c.ActiveJobs++
		}
		c.TotalApplications += len(j.Applications)
	}
	return c
}
