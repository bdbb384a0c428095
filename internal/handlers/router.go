package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/constants"
	"github.com/yukikurage/piyuclean-api/internal/middleware"
	"github.com/yukikurage/piyuclean-api/internal/services"
)

// RegisterRoutes mounts the API on r. Session middleware must already be
// installed on r.
func RegisterRoutes(r *gin.Engine, svc *services.Services, requestTimeout time.Duration) {
	RegisterValidators()

	authHandler := NewAuthHandler(svc.Auth)
	assignmentHandler := NewAssignmentHandler(svc.Assignments)
	reportHandler := NewReportHandler(svc.Reports)
	studentHandler := NewStudentHandler(svc.Students)
	classroomHandler := NewClassroomHandler(svc.Classrooms)
	taskHandler := NewTaskHandler(svc.Tasks)
	checklistHandler := NewChecklistHandler(svc.Checklists)
	adminUserHandler := NewAdminUserHandler(svc.AdminUsers)

	requireAssignment := middleware.RequireAssignmentAccess(svc.Assignments)

	api := r.Group("/api")
	if requestTimeout > 0 {
		api.Use(middleware.RequestTimeout(requestTimeout))
	}

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/student-login", authHandler.StudentLogin)
		auth.POST("/student-register", authHandler.StudentRegister)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	}

	// Student routes
	me := api.Group("/me")
	me.Use(middleware.RequireAuth(), middleware.RequireRole(constants.RoleStudent))
	{
		me.GET("/assignments", assignmentHandler.ListMyAssignments)
		me.GET("/assignments/:id", requireAssignment, assignmentHandler.GetAssignment)
		me.POST("/assignments/:id/complete", assignmentHandler.MarkMyComplete)
	}

	// Admin routes
	admin := api.Group("")
	admin.Use(middleware.RequireAuth(), middleware.RequireRole(constants.RoleAdmin))

	assignments := admin.Group("/assignments")
	{
		assignments.GET("", assignmentHandler.ListAssignments)
		assignments.POST("", assignmentHandler.CreateAssignment)
		assignments.GET("/expanded", assignmentHandler.ListExpanded)
		assignments.POST("/random", assignmentHandler.CreateRandomAssignment)
		assignments.POST("/sweep-overdue", assignmentHandler.SweepOverdue)
		assignments.GET("/:id", requireAssignment, assignmentHandler.GetAssignment)
		assignments.PUT("/:id", assignmentHandler.UpdateStatus)
		assignments.POST("/:id/complete", assignmentHandler.MarkComplete)
		assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)
	}

	reports := admin.Group("/reports")
	{
		reports.GET("/weekly-summary", reportHandler.WeeklySummary)
		reports.GET("/student-performance", reportHandler.StudentPerformance)
	}

	students := admin.Group("/students")
	{
		students.GET("", studentHandler.ListStudents)
		students.POST("", studentHandler.CreateStudent)
		students.GET("/:id", studentHandler.GetStudent)
		students.PUT("/:id", studentHandler.UpdateStudent)
		students.DELETE("/:id", studentHandler.DeleteStudent)
	}

	classrooms := admin.Group("/classrooms")
	{
		classrooms.GET("", classroomHandler.ListClassrooms)
		classrooms.POST("", classroomHandler.CreateClassroom)
		classrooms.GET("/:id", classroomHandler.GetClassroom)
		classrooms.PUT("/:id", classroomHandler.UpdateClassroom)
		classrooms.DELETE("/:id", classroomHandler.DeleteClassroom)
	}

	tasks := admin.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.POST("/generate", taskHandler.GenerateTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	checklists := admin.Group("/checklists")
	{
		checklists.GET("", checklistHandler.ListChecklists)
		checklists.POST("", checklistHandler.CreateChecklist)
		checklists.GET("/:id", checklistHandler.GetChecklist)
		checklists.PUT("/:id", checklistHandler.UpdateChecklist)
		checklists.DELETE("/:id", checklistHandler.DeleteChecklist)
	}

	adminUsers := admin.Group("/admin-users")
	{
		adminUsers.GET("", adminUserHandler.ListAdminUsers)
		adminUsers.POST("", adminUserHandler.CreateAdminUser)
		adminUsers.GET("/:id", adminUserHandler.GetAdminUser)
		adminUsers.PUT("/:id", adminUserHandler.UpdateAdminUser)
		adminUsers.DELETE("/:id", adminUserHandler.DeleteAdminUser)
	}
}
