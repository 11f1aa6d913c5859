package controller

import (
	"dojo/app_error"
	"dojo/service"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	service *service.ScheduleService
}

func NewScheduleController(scheduleService *service.ScheduleService) *ScheduleController {
	return &ScheduleController{service: scheduleService}
}

func setupScheduleController(deps Dependencies) []RouteInfo {
	e := NewScheduleController(deps.ScheduleService)
	return []RouteInfo{
		{Method: "GET", Path: "/schedule", HandlerFunc: e.getScheduleHandler(), Cached: true},
		{Method: "GET", Path: "/instructors", HandlerFunc: e.getInstructorsHandler(), Cached: true},
		{Method: "GET", Path: "/instructors/:slug", HandlerFunc: e.getInstructorHandler(), Cached: true},
	}
}

// @id GetSchedule
// @Description Weekly class schedule ordered by day and start time
// @Tags schedule
// @Produce json
// @Param day query string false "Day of the week" Enums(all, monday, tuesday, wednesday, thursday, friday, saturday, sunday)
// @Success 200 {array} service.Class
// @Failure 400 {object} ErrorResponse
// @Router /schedule [get]
func (e *ScheduleController) getScheduleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		classes, err := e.service.GetClasses(c.Query("day"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, classes)
	}
}

// @id GetInstructors
// @Description Lists the gym's instructors
// @Tags schedule
// @Produce json
// @Success 200 {array} service.Instructor
// @Router /instructors [get]
func (e *ScheduleController) getInstructorsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, e.service.GetInstructors())
	}
}

// @id GetInstructor
// @Description Fetches an instructor together with the classes they teach
// @Tags schedule
// @Produce json
// @Param slug path string true "Instructor slug"
// @Success 200 {object} InstructorResponse
// @Failure 404 {object} ErrorResponse
// @Router /instructors/{slug} [get]
func (e *ScheduleController) getInstructorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		instructor, classes, err := e.service.GetInstructor(c.Param("slug"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, InstructorResponse{Instructor: instructor, Classes: classes})
	}
}

type InstructorResponse struct {
	*service.Instructor
	Classes []*service.Class `json:"classes"`
}
